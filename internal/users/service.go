package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z]+(\s[A-Za-z]+)*$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidationError carries a field-to-message mapping for invalid input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid user input: %d field(s)", len(e.Fields))
}

// ResumeDeleter removes all resumes owned by a user. Wired in bootstrap so
// account deletion cascades even when repos are in-memory.
type ResumeDeleter interface {
	DeleteByUser(ctx context.Context, userID string) error
}

// Service contains business logic for user accounts.
type Service struct {
	Repo    Repo
	Resumes ResumeDeleter
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create registers a new account with a bcrypt-hashed password.
func (s *Service) Create(ctx context.Context, name, email, password string) (User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	fields := map[string]string{}
	if !nameRe.MatchString(name) {
		fields["name"] = "Name should only contain alphabets and a single space between words, without leading or trailing spaces"
	}
	if !emailRe.MatchString(email) {
		fields["email"] = "Email should be valid"
	}
	if strings.TrimSpace(password) == "" {
		fields["password"] = "Password cannot be blank"
	}
	if len(fields) > 0 {
		return User{}, &ValidationError{Fields: fields}
	}

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Active:       true,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	if strings.TrimSpace(email) == "" {
		return User{}, errors.New("email is required")
	}
	return s.Repo.GetByEmail(ctx, email)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.Repo.List(ctx)
}

// Update applies a partial update: only non-blank name/email overwrite.
func (s *Service) Update(ctx context.Context, userID, name, email string) (User, error) {
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, err
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name != "" {
		if !nameRe.MatchString(name) {
			return User{}, &ValidationError{Fields: map[string]string{
				"name": "Name should only contain alphabets and a single space between words, without leading or trailing spaces",
			}}
		}
		user.Name = name
	}
	if email != "" {
		if !emailRe.MatchString(email) {
			return User{}, &ValidationError{Fields: map[string]string{"email": "Email should be valid"}}
		}
		user.Email = email
	}

	if err := s.Repo.Update(ctx, user); err != nil {
		return User{}, err
	}
	return s.Repo.GetByID(ctx, userID)
}

// Delete removes the account and cascades resume (and thereby analysis)
// ownership.
func (s *Service) Delete(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errors.New("user id is required")
	}
	if _, err := s.Repo.GetByID(ctx, userID); err != nil {
		return err
	}
	if s.Resumes != nil {
		if err := s.Resumes.DeleteByUser(ctx, userID); err != nil {
			return err
		}
	}
	return s.Repo.Delete(ctx, userID)
}

// FindOrCreateFromOAuth resolves an account by email, creating a placeholder
// password account on first sign-in.
func (s *Service) FindOrCreateFromOAuth(ctx context.Context, name, email string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return User{}, errors.New("email is required")
	}
	user, err := s.Repo.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}
	if !nameRe.MatchString(strings.TrimSpace(name)) {
		name = "New User"
	}
	return s.Create(ctx, name, email, uuid.NewString())
}

package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	sharedauth "resume-analyzer/internal/shared/auth"
	"resume-analyzer/internal/users"
)

var (
	// ErrInvalidCredentials covers unknown emails and password mismatches.
	// Both cases look identical to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountDisabled signals a valid login against a deactivated account.
	ErrAccountDisabled = errors.New("account is disabled")
)

// Service authenticates password logins and issues tokens.
type Service struct {
	Users  *users.Service
	Issuer *sharedauth.TokenIssuer
}

func NewService(userSvc *users.Service, issuer *sharedauth.TokenIssuer) *Service {
	return &Service{Users: userSvc, Issuer: issuer}
}

// Login verifies the email/password pair and returns a signed token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	if !user.Active {
		return "", ErrAccountDisabled
	}
	return s.Issuer.Sign(user.ID, user.Email)
}

// TokenFor issues a token for an already-verified user, used by OAuth sign-in.
func (s *Service) TokenFor(user users.User) (string, error) {
	if !user.Active {
		return "", ErrAccountDisabled
	}
	return s.Issuer.Sign(user.ID, user.Email)
}

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	sharedauth "resume-analyzer/internal/shared/auth"
	"resume-analyzer/internal/users"
)

func newTestService(t *testing.T) (*Service, users.User) {
	t.Helper()

	userSvc := users.NewService(users.NewMemoryRepo())
	user, err := userSvc.Create(context.Background(), "Jane Doe", "jane@example.com", "s3cret")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	issuer, err := sharedauth.NewTokenIssuer("test-secret-test-secret-test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	return NewService(userSvc, issuer), user
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, user := newTestService(t)

	token, err := svc.Login(context.Background(), "jane@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := svc.Issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("uid = %q, want %q", claims.UserID, user.ID)
	}
	if claims.Subject != "jane@example.com" {
		t.Fatalf("sub = %q", claims.Subject)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Login(context.Background(), "jane@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Login(context.Background(), "nobody@example.com", "s3cret")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, user := newTestService(t)

	// Deactivate directly through the repo, the service has no disable path.
	repo := svc.Users.Repo
	stored, err := repo.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	stored.Active = false
	if err := repo.Update(context.Background(), stored); err != nil {
		t.Fatalf("update user: %v", err)
	}

	_, err = svc.Login(context.Background(), "jane@example.com", "s3cret")
	if !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestTokenForDisabledAccount(t *testing.T) {
	svc, user := newTestService(t)
	user.Active = false
	if _, err := svc.TokenFor(user); !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

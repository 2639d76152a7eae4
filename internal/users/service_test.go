package users

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestCreateHashesPassword(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	user, err := svc.Create(context.Background(), "Jane Doe", "jane@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.PasswordHash == "hunter2" || user.PasswordHash == "" {
		t.Fatalf("expected hashed password, got %q", user.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")); err != nil {
		t.Fatalf("hash does not match password: %v", err)
	}
	if !user.Active {
		t.Fatal("expected new account to be active")
	}
}

func TestCreateRejectsInvalidName(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	for _, name := range []string{"", "Jane  Doe", " Jane", "Jane1", "Jane-Doe"} {
		_, err := svc.Create(context.Background(), name, "jane@example.com", "hunter2")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("name %q: expected ValidationError, got %v", name, err)
		}
		if _, ok := verr.Fields["name"]; !ok {
			t.Fatalf("name %q: expected name field error, got %v", name, verr.Fields)
		}
	}
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.Create(context.Background(), "Jane Doe", "jane@example.com", "hunter2"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "Other Jane", "jane@example.com", "hunter3"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUpdateIsPartial(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	user, err := svc.Create(context.Background(), "Jane Doe", "jane@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(context.Background(), user.ID, "Janet Doe", "")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Janet Doe" {
		t.Fatalf("expected name update, got %q", updated.Name)
	}
	if updated.Email != "jane@example.com" {
		t.Fatalf("blank email must not overwrite, got %q", updated.Email)
	}
}

func TestDeleteMissingReturnsNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if err := svc.Delete(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

type recordingDeleter struct {
	deleted []string
}

func (d *recordingDeleter) DeleteByUser(ctx context.Context, userID string) error {
	d.deleted = append(d.deleted, userID)
	return nil
}

func TestDeleteCascadesResumes(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	cascade := &recordingDeleter{}
	svc.Resumes = cascade

	user, err := svc.Create(context.Background(), "Jane Doe", "jane@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(cascade.deleted) != 1 || cascade.deleted[0] != user.ID {
		t.Fatalf("expected cascade for %s, got %v", user.ID, cascade.deleted)
	}
	if _, err := svc.GetByID(context.Background(), user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

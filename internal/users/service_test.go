package users

import (
	"context"
	"testing"
)

func TestUpsertFromAuthAssignsDefaultRole(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	err := svc.UpsertFromAuth(context.Background(), User{ID: "google:1", Email: "a@b.c", FullName: "Ana"})
	if err != nil {
		t.Fatalf("UpsertFromAuth: %v", err)
	}

	user, err := svc.GetByID(context.Background(), "google:1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if user.Role != RoleOperator {
		t.Fatalf("expected default role %q, got %q", RoleOperator, user.Role)
	}
}

func TestUpsertFromAuthPreservesExistingRole(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	if err := repo.Upsert(context.Background(), User{ID: "google:1", Email: "a@b.c", Role: "admin"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.UpsertFromAuth(context.Background(), User{ID: "google:1", Email: "a@b.c", FullName: "Ana"}); err != nil {
		t.Fatalf("UpsertFromAuth: %v", err)
	}

	user, err := svc.GetByID(context.Background(), "google:1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if user.Role != "admin" {
		t.Fatalf("expected admin role preserved, got %q", user.Role)
	}
}

func TestUpsertFromAuthRequiresIdentity(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if err := svc.UpsertFromAuth(context.Background(), User{Email: "a@b.c"}); err == nil {
		t.Fatalf("expected error for missing id")
	}
	if err := svc.UpsertFromAuth(context.Background(), User{ID: "google:1"}); err == nil {
		t.Fatalf("expected error for missing email")
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if _, err := svc.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

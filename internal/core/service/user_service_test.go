package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
	"github.com/Asfa64/DOC-ASFA/internal/core/ports"
)

func createUserInput(name, email, password, role, profileID string) ports.CreateUserInput {
	return ports.CreateUserInput{
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      role,
		ProfileID: profileID,
	}
}

func TestUserService_Create_StoresNormalizedPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), createUserInput("alice", "alice@asfa.test", "29/02/2024", domain.RoleUser, "p1"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Password != "29022024" {
		t.Fatalf("password not normalized: %q", created.Password)
	}

	stored := repo.users[created.ID]
	if stored.Password != "29022024" {
		t.Fatalf("stored password not normalized: %q", stored.Password)
	}
}

func TestUserService_Create_RejectsInvalidDate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	cases := []string{
		"29/02/2023", // not a leap year
		"31/04/2024", // April has 30 days
		"01/01/1899", // below year floor
		"1/1/2024",   // 7 digits
		"notadate",
	}
	for _, pw := range cases {
		if _, err := svc.Create(context.Background(), createUserInput("bob", "bob@asfa.test", pw, domain.RoleUser, "p1")); err != domain.ErrInvalidDateKey {
			t.Errorf("password %q: expected ErrInvalidDateKey, got %v", pw, err)
		}
	}
	if len(repo.users) != 0 {
		t.Fatalf("invalid users reached the store: %d", len(repo.users))
	}
}

func TestUserService_Create_UserRoleRequiresProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), createUserInput("bob", "bob@asfa.test", "01/01/2024", domain.RoleUser, "")); err != domain.ErrProfileRequired {
		t.Fatalf("expected ErrProfileRequired, got %v", err)
	}

	// Admins may go without a profile.
	if _, err := svc.Create(context.Background(), createUserInput("root", "root@asfa.test", "01/01/2024", domain.RoleAdmin, "")); err != nil {
		t.Fatalf("admin without profile rejected: %v", err)
	}
}

func TestUserService_Create_RejectsUnknownRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), createUserInput("bob", "bob@asfa.test", "01/01/2024", "superuser", "p1")); err != domain.ErrInvalidUserInput {
		t.Fatalf("expected ErrInvalidUserInput, got %v", err)
	}
}

func TestUserService_Create_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	_, _ = svc.Create(context.Background(), createUserInput("bob", "bob@asfa.test", "01/01/2024", domain.RoleUser, "p1"))
	if _, err := svc.Create(context.Background(), createUserInput("bob2", "bob@asfa.test", "02/01/2024", domain.RoleUser, "p1")); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), createUserInput("bob", "bob@asfa.test", "01/01/2024", domain.RoleUser, "p1"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

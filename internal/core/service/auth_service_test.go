package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByCredentials(_ context.Context, email, password string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.Password == password {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = user.Email
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func TestAuthService_Login_NormalizedEquivalence(t *testing.T) {
	repo := newStubUserRepo()
	users := NewUserService(repo, zerolog.Nop())
	auth := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())

	if _, err := users.Create(context.Background(), createUserInput("alice", "alice@asfa.test", "01/01/2024", domain.RoleUser, "p1")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Separator-free input matches the account created with slashes.
	token, user, err := auth.Login(context.Background(), "alice@asfa.test", "01012024")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "alice@asfa.test" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleUser || claims["profile_id"] != "p1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims["name"] != "alice" {
		t.Fatalf("name claim = %v, want alice", claims["name"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	users := NewUserService(repo, zerolog.Nop())
	auth := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())

	_, _ = users.Create(context.Background(), createUserInput("alice", "alice@asfa.test", "01/01/2024", domain.RoleUser, "p1"))

	if _, _, err := auth.Login(context.Background(), "alice@asfa.test", "02012024"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailIsGeneric(t *testing.T) {
	repo := newStubUserRepo()
	auth := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())

	// Unknown email must surface exactly like a wrong password.
	if _, _, err := auth.Login(context.Background(), "ghost@asfa.test", "01012024"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_MalformedPasswordNeverHitsStore(t *testing.T) {
	repo := newStubUserRepo()
	auth := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())

	// 7 digits: rejected by normalization before any store lookup.
	if _, _, err := auth.Login(context.Background(), "alice@asfa.test", "1/1/2024"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, _, err := auth.Login(context.Background(), "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty input, got %v", err)
	}
}

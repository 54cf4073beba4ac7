package ports

import (
	"context"

	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
)

// CreateUserInput carries all data needed to create an account. Password
// is the raw date input; the service normalizes it before storage.
type CreateUserInput struct {
	Name      string
	Email     string
	Password  string
	Role      string
	ProfileID string
}

// UserService defines the administrative account operations.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

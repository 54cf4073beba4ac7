package ports

import (
	"context"

	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	// FindByCredentials retrieves the user whose email and stored
	// normalized password both match. ErrUserNotFound on no match; the
	// caller decides how much of that to reveal.
	FindByCredentials(ctx context.Context, email, password string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

package ports

import (
	"context"

	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
)

// ProfileRepository defines persistence operations for visibility profiles.
type ProfileRepository interface {
	List(ctx context.Context) ([]domain.Profile, error)
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	// Update applies a partial update; nil fields are left unchanged.
	Update(ctx context.Context, id string, update UpdateProfileInput) error
	Delete(ctx context.Context, id string) error
}

// UpdateProfileInput carries the mutable profile fields for a partial
// update. Nil means "leave as is".
type UpdateProfileInput struct {
	Name        *string
	Description *string
}

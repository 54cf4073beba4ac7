package ports

import (
	"context"

	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
)

// CreateProfileInput carries the data needed to create a visibility profile.
type CreateProfileInput struct {
	Name        string
	Description string
}

// ProfileService defines the administrative profile operations. Delete
// does not cascade: users and buttons referencing the deleted profile keep
// their dangling ids, which the access filter simply never matches.
type ProfileService interface {
	List(ctx context.Context) ([]domain.Profile, error)
	Create(ctx context.Context, input CreateProfileInput) (*domain.Profile, error)
	Update(ctx context.Context, id string, update UpdateProfileInput) error
	Delete(ctx context.Context, id string) error
}

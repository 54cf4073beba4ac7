package ports

import (
	"context"

	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
)

// CreateButtonInput carries all data needed to create a launcher button.
type CreateButtonInput struct {
	Title      string
	Color      string
	Shape      domain.ButtonShape
	Tooltip    string
	Link       domain.Link
	ProfileIDs []string
}

// ButtonService defines launcher-button operations. ListAll serves the
// admin surface unfiltered; ListVisible applies the profile access filter
// for the home grid.
type ButtonService interface {
	ListAll(ctx context.Context) ([]domain.Button, error)
	ListVisible(ctx context.Context, principal *domain.User) ([]domain.Button, error)
	Create(ctx context.Context, input CreateButtonInput) (*domain.Button, error)
	Update(ctx context.Context, id string, update UpdateButtonInput) error
	Delete(ctx context.Context, id string) error
	// Resolve maps a viewer url parameter back to the button link it came
	// from, for the exhaustive per-kind viewer dispatch.
	Resolve(ctx context.Context, url string, principal *domain.User) (*domain.Link, error)
}

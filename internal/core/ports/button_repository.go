package ports

import (
	"context"

	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
)

// ButtonRepository defines persistence operations for launcher buttons.
// List is capped at domain.MaxButtons records at the query level.
type ButtonRepository interface {
	List(ctx context.Context) ([]domain.Button, error)
	Create(ctx context.Context, button *domain.Button) (*domain.Button, error)
	// Update applies a partial update; nil fields are left unchanged.
	Update(ctx context.Context, id string, update UpdateButtonInput) error
	Delete(ctx context.Context, id string) error
}

// UpdateButtonInput carries the mutable button fields for a partial
// update. Nil means "leave as is". ProfileIDs, when non-nil, replaces the
// whole set (an empty slice makes the button visible to nobody).
type UpdateButtonInput struct {
	Title      *string
	Color      *string
	Shape      *domain.ButtonShape
	Tooltip    *string
	Link       *domain.Link
	ProfileIDs *[]string
}

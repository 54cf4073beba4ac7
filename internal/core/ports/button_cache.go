package ports

import (
	"context"

	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
)

// ButtonCache is a TTL-bounded cache of the full launcher-button list.
// Staleness is handled by the implementation's TTL; callers additionally
// call Invalidate after any local mutation. A cache error is a degraded
// read, not a failure: callers fall through to the repository.
type ButtonCache interface {
	// Get returns the cached list and true on a hit. A miss (expired or
	// never set) returns ok=false with a nil error.
	Get(ctx context.Context) (buttons []domain.Button, ok bool, err error)
	Set(ctx context.Context, buttons []domain.Button) error
	Invalidate(ctx context.Context) error
}

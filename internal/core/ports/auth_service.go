package ports

import (
	"context"

	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
)

// AuthService authenticates dashboard users and issues session tokens.
type AuthService interface {
	// Login normalizes the supplied date password, looks up the matching
	// account and returns a signed session token with the user. Any
	// failure mode (malformed password, unknown email, wrong password)
	// surfaces as domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

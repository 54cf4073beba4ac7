package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
)

// ctxPrincipal rebuilds the session principal from the claims injected by
// the Auth middleware. A missing role proves the middleware did not run on
// this route, which is a wiring bug surfaced as 401 rather than a panic.
func ctxPrincipal(c echo.Context) (*domain.User, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get("user_id").(string)
	name, _ := c.Get("name").(string)
	email, _ := c.Get("email").(string)
	profileID, _ := c.Get("profile_id").(string)

	return &domain.User{
		ID:        userID,
		Name:      name,
		Email:     email,
		Role:      role,
		ProfileID: profileID,
	}, nil
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runRBAC(t *testing.T, role string, allowed ...string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}

	called := false
	mw := RBAC(allowed...)
	if err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, called
}

func TestRBAC_AllowsAdmin(t *testing.T) {
	rec, called := runRBAC(t, "admin", "admin")
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("admin should pass: called=%v code=%d", called, rec.Code)
	}
}

func TestRBAC_ForbidsUserOnAdminSurface(t *testing.T) {
	rec, called := runRBAC(t, "user", "admin")
	if called {
		t.Fatalf("next handler should not run")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRBAC_ForbidsMissingRole(t *testing.T) {
	rec, called := runRBAC(t, "", "admin", "user")
	if called || rec.Code != http.StatusForbidden {
		t.Fatalf("missing role should be forbidden: called=%v code=%d", called, rec.Code)
	}
}

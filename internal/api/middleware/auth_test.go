package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, header string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(testSecret)
	err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, c, err
}

func TestAuth_ValidTokenInjectsClaims(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id":    "u1",
		"name":       "alice",
		"email":      "alice@asfa.test",
		"role":       "user",
		"profile_id": "p1",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	_, c, err := runAuth(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if c.Get("user_id") != "u1" || c.Get("role") != "user" || c.Get("profile_id") != "p1" {
		t.Fatalf("claims not injected: %v %v %v", c.Get("user_id"), c.Get("role"), c.Get("profile_id"))
	}
	if c.Get("name") != "alice" {
		t.Fatalf("name claim not injected: %v", c.Get("name"))
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, _, err := runAuth(t, "")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	_, _, err := runAuth(t, "Token abc")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	_, _, err := runAuth(t, "Bearer "+token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	_, _, err := runAuth(t, "Bearer "+token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

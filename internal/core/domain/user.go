package domain

import "errors"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidDateKey     = errors.New("password must be a valid date (DDMMYYYY)")
	ErrInvalidUserInput   = errors.New("name, email and a valid role are required")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrProfileRequired    = errors.New("user role requires a profile")
	ErrForbidden          = errors.New("access forbidden")
)

// User models an account on the dashboard. Password always holds the
// normalized 8-digit date key, never the raw input, and is never
// serialized to clients.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	Role      string `json:"role"`
	ProfileID string `json:"profile_id,omitempty"`
}

// IsAdmin reports whether the user can reach the administrative surface.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

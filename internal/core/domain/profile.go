package domain

import "errors"

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrProfileNameRequired = errors.New("profile name is required")
)

// Profile is a named visibility group. Users carry at most one profile id;
// buttons carry a set of them. Deleting a profile leaves any references to
// it in place; a dangling id simply never matches in the access filter.
type Profile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

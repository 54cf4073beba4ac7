package domain

import "errors"

// MaxButtons caps the number of launcher buttons that may exist
// system-wide. The home grid renders at most a 3x3 layout.
const MaxButtons = 9

// DefaultButtonColor is applied when a button is created without one.
const DefaultButtonColor = "#67BEE8"

// ButtonShape controls how a launcher tile is rendered.
type ButtonShape string

const (
	ShapeSquare  ButtonShape = "square"
	ShapeRounded ButtonShape = "rounded"
	ShapeCircle  ButtonShape = "circle"
)

// IsValid reports whether s is one of the known shapes.
func (s ButtonShape) IsValid() bool {
	switch s {
	case ShapeSquare, ShapeRounded, ShapeCircle:
		return true
	}
	return false
}

// LinkKind discriminates what a launcher button opens.
type LinkKind string

const (
	// LinkExternal opens an arbitrary external URL in a new tab.
	LinkExternal LinkKind = "external"
	// LinkDocument embeds a cloud-hosted document in the viewer.
	LinkDocument LinkKind = "document"
	// LinkPDF serves an uploaded PDF from the blob store.
	LinkPDF LinkKind = "pdf"
)

var (
	ErrButtonNotFound    = errors.New("button not found")
	ErrButtonLimit       = errors.New("button limit reached")
	ErrInvalidLink       = errors.New("invalid button link")
	ErrFilenameRequired  = errors.New("pdf link requires a filename")
	ErrInvalidShape      = errors.New("invalid button shape")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrInvalidDocument   = errors.New("file must be a PDF of at most 10MB")
	ErrUnknownLinkTarget = errors.New("url does not match any button link")
)

// Link is the tagged target of a launcher button. Filename is only
// meaningful for LinkPDF, where it names the blob in the document store.
type Link struct {
	Kind     LinkKind `json:"kind"`
	URL      string   `json:"url"`
	Filename string   `json:"filename,omitempty"`
}

// Validate checks the per-kind field requirements.
func (l Link) Validate() error {
	switch l.Kind {
	case LinkExternal, LinkDocument:
		if l.URL == "" {
			return ErrInvalidLink
		}
		return nil
	case LinkPDF:
		if l.Filename == "" {
			return ErrFilenameRequired
		}
		return nil
	default:
		return ErrInvalidLink
	}
}

// Button is a configurable launcher tile on the dashboard home grid.
type Button struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Color      string      `json:"color"`
	Shape      ButtonShape `json:"shape"`
	Tooltip    string      `json:"tooltip,omitempty"`
	Link       Link        `json:"link"`
	ProfileIDs []string    `json:"profile_ids"`
}

// VisibleTo reports whether the button is shown to a principal holding
// profileID. An empty profileID never matches: admin accounts without a
// profile see nothing through this filter.
func (b *Button) VisibleTo(profileID string) bool {
	if profileID == "" {
		return false
	}
	for _, id := range b.ProfileIDs {
		if id == profileID {
			return true
		}
	}
	return false
}

// VisibleButtons filters all down to the buttons the principal may see.
// Input order is preserved; the result is empty when nothing matches or
// the principal has no profile.
func VisibleButtons(all []Button, principal *User) []Button {
	if principal == nil || principal.ProfileID == "" {
		return nil
	}
	var visible []Button
	for _, b := range all {
		if b.VisibleTo(principal.ProfileID) {
			visible = append(visible, b)
		}
	}
	return visible
}

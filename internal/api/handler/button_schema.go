package handler

import (
	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
)

type linkRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=external document pdf"`
	URL      string `json:"url,omitempty" validate:"omitempty,url"`
	Filename string `json:"filename,omitempty"`
}

type createButtonRequest struct {
	Title      string      `json:"title" validate:"required"`
	Color      string      `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Shape      string      `json:"shape,omitempty" validate:"omitempty,oneof=square rounded circle"`
	Tooltip    string      `json:"tooltip,omitempty"`
	Link       linkRequest `json:"link" validate:"required"`
	ProfileIDs []string    `json:"profile_ids" validate:"required,min=1"`
}

// updateButtonRequest carries a partial update: absent fields stay nil and
// leave the stored value untouched. An explicit empty profile_ids list is
// legal and makes the button visible to nobody.
type updateButtonRequest struct {
	Title      *string      `json:"title,omitempty"`
	Color      *string      `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Shape      *string      `json:"shape,omitempty" validate:"omitempty,oneof=square rounded circle"`
	Tooltip    *string      `json:"tooltip,omitempty"`
	Link       *linkRequest `json:"link,omitempty"`
	ProfileIDs *[]string    `json:"profile_ids,omitempty"`
}

type buttonListResponse struct {
	Buttons []domain.Button `json:"buttons"`
}

type viewerResponse struct {
	Kind string `json:"kind"`
	// Src is what the viewer embeds: the target url for external and
	// document links, the document-store path for pdf links.
	Src string `json:"src"`
}

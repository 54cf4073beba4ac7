package handler

import (
	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
	"github.com/Asfa64/DOC-ASFA/internal/core/ports"
)

// --- Request → Service input ---

func toLink(req linkRequest) domain.Link {
	return domain.Link{
		Kind:     domain.LinkKind(req.Kind),
		URL:      req.URL,
		Filename: req.Filename,
	}
}

func toCreateButtonInput(req createButtonRequest) ports.CreateButtonInput {
	return ports.CreateButtonInput{
		Title:      req.Title,
		Color:      req.Color,
		Shape:      domain.ButtonShape(req.Shape),
		Tooltip:    req.Tooltip,
		Link:       toLink(req.Link),
		ProfileIDs: req.ProfileIDs,
	}
}

func toUpdateButtonInput(req updateButtonRequest) ports.UpdateButtonInput {
	input := ports.UpdateButtonInput{
		Title:      req.Title,
		Color:      req.Color,
		Tooltip:    req.Tooltip,
		ProfileIDs: req.ProfileIDs,
	}
	if req.Shape != nil {
		shape := domain.ButtonShape(*req.Shape)
		input.Shape = &shape
	}
	if req.Link != nil {
		link := toLink(*req.Link)
		input.Link = &link
	}
	return input
}

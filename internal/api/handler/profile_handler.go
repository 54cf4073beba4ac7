package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
	"github.com/Asfa64/DOC-ASFA/internal/core/ports"
)

// ProfileHandler serves the administrative profile management surface.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type createProfileRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

type updateProfileRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type profileListResponse struct {
	Profiles []domain.Profile `json:"profiles"`
}

// List handles GET /v1/admin/profiles.
//
// @Summary      List visibility profiles
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileListResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/profiles [get]
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if profiles == nil {
		profiles = []domain.Profile{}
	}
	return c.JSON(http.StatusOK, profileListResponse{Profiles: profiles})
}

// Create handles POST /v1/admin/profiles.
//
// @Summary      Create a visibility profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProfileRequest  true  "Profile details"
// @Success      201   {object}  domain.Profile
// @Failure      400   {object}  map[string]string
// @Router       /v1/admin/profiles [post]
func (h *ProfileHandler) Create(c echo.Context) error {
	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateProfileInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

// Update handles PATCH /v1/admin/profiles/:id.
//
// @Summary      Update a visibility profile
// @Tags         profiles
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string                true  "Profile id"
// @Param        body  body  updateProfileRequest  true  "Fields to change"
// @Success      204
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/profiles/{id} [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProfileInput{
		Name:        req.Name,
		Description: req.Description,
	}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/admin/profiles/:id. References held by users
// and buttons are not cleaned up; those launchers silently vanish for the
// affected accounts.
//
// @Summary      Delete a visibility profile
// @Tags         profiles
// @Security     BearerAuth
// @Param        id  path  string  true  "Profile id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/profiles/{id} [delete]
func (h *ProfileHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Asfa64/DOC-ASFA/internal/api/metrics"
	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
	"github.com/Asfa64/DOC-ASFA/internal/core/ports"
)

// ButtonHandler serves the home grid and the administrative button CRUD.
type ButtonHandler struct {
	service ports.ButtonService
}

func NewButtonHandler(service ports.ButtonService) *ButtonHandler {
	return &ButtonHandler{service: service}
}

// ListVisible handles GET /v1/buttons — the principal's home grid.
//
// @Summary      Buttons visible to the current principal
// @Tags         buttons
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  buttonListResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/buttons [get]
func (h *ButtonHandler) ListVisible(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	buttons, err := h.service.ListVisible(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	if buttons == nil {
		buttons = []domain.Button{}
	}
	return c.JSON(http.StatusOK, buttonListResponse{Buttons: buttons})
}

// ListAll handles GET /v1/admin/buttons — the unfiltered admin view.
//
// @Summary      All launcher buttons (admin)
// @Tags         buttons
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  buttonListResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/buttons [get]
func (h *ButtonHandler) ListAll(c echo.Context) error {
	buttons, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	if buttons == nil {
		buttons = []domain.Button{}
	}
	return c.JSON(http.StatusOK, buttonListResponse{Buttons: buttons})
}

// Create handles POST /v1/admin/buttons.
//
// @Summary      Create a launcher button
// @Tags         buttons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createButtonRequest  true  "Button definition"
// @Success      201   {object}  domain.Button
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/admin/buttons [post]
func (h *ButtonHandler) Create(c echo.Context) error {
	var req createButtonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), toCreateButtonInput(req))
	if err != nil {
		return err
	}

	metrics.ButtonMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update handles PATCH /v1/admin/buttons/:id — a partial update.
//
// @Summary      Update a launcher button
// @Tags         buttons
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string               true  "Button id"
// @Param        body  body  updateButtonRequest  true  "Fields to change"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/buttons/{id} [patch]
func (h *ButtonHandler) Update(c echo.Context) error {
	var req updateButtonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateButtonInput(req)); err != nil {
		return err
	}

	metrics.ButtonMutationsTotal.WithLabelValues("update").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/admin/buttons/:id.
//
// @Summary      Delete a launcher button
// @Tags         buttons
// @Security     BearerAuth
// @Param        id  path  string  true  "Button id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/buttons/{id} [delete]
func (h *ButtonHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ButtonMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Resolve handles GET /v1/viewer?url=... — the viewer dispatch. The url
// must belong to a button link the principal can see; the response tells
// the viewer surface what to embed for each link kind.
//
// @Summary      Resolve a viewer target
// @Tags         viewer
// @Produce      json
// @Security     BearerAuth
// @Param        url  query     string  true  "Link target (url or pdf filename)"
// @Success      200  {object}  viewerResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/viewer [get]
func (h *ButtonHandler) Resolve(c echo.Context) error {
	url := c.QueryParam("url")
	if url == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "url query parameter is required")
	}

	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	link, err := h.service.Resolve(c.Request().Context(), url, principal)
	if err != nil {
		return err
	}

	resp := viewerResponse{Kind: string(link.Kind)}
	switch link.Kind {
	case domain.LinkExternal, domain.LinkDocument:
		resp.Src = link.URL
	case domain.LinkPDF:
		resp.Src = "/v1/documents/" + link.Filename
	}
	return c.JSON(http.StatusOK, resp)
}

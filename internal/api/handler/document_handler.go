package handler

import (
	"errors"
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Asfa64/DOC-ASFA/internal/api/metrics"
	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
	"github.com/Asfa64/DOC-ASFA/internal/core/ports"
)

// DocumentHandler serves PDF uploads and downloads. An upload returns the
// generated filename, which the admin screen then writes into a pdf button
// link; the blob therefore always exists before the button that points at
// it.
type DocumentHandler struct {
	service ports.DocumentService
}

func NewDocumentHandler(service ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

type uploadResponse struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
}

// Upload handles POST /v1/admin/documents (multipart field "file").
//
// @Summary      Upload a PDF
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "PDF file (max 10MB)"
// @Success      201   {object}  uploadResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/admin/documents [post]
func (h *DocumentHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file field is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
	}
	defer src.Close()

	result, err := h.service.Upload(c.Request().Context(), ports.UploadDocumentInput{
		OriginalName: fileHeader.Filename,
		Size:         fileHeader.Size,
		Content:      src,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDocument) {
			metrics.DocumentUploadsTotal.WithLabelValues("rejected").Inc()
		} else {
			metrics.DocumentUploadsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.DocumentUploadsTotal.WithLabelValues("success").Inc()
	metrics.DocumentUploadBytes.Observe(float64(result.Size))

	return c.JSON(http.StatusCreated, uploadResponse{
		Filename:     result.Filename,
		OriginalName: result.OriginalName,
		Size:         result.Size,
	})
}

// Fetch handles GET /v1/documents/:filename, streaming the PDF inline for
// the viewer surface.
//
// @Summary      Fetch a stored PDF
// @Tags         documents
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        filename  path  string  true  "Stored filename"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /v1/documents/{filename} [get]
func (h *DocumentHandler) Fetch(c echo.Context) error {
	filename := c.Param("filename")

	rc, _, err := h.service.Fetch(c.Request().Context(), filename)
	if err != nil {
		return err
	}
	defer rc.Close()

	disposition := mime.FormatMediaType("inline", map[string]string{"filename": filename})
	c.Response().Header().Set(echo.HeaderContentDisposition, disposition)
	return c.Stream(http.StatusOK, "application/pdf", rc)
}

// Delete handles DELETE /v1/admin/documents/:filename.
//
// @Summary      Delete a stored PDF
// @Tags         documents
// @Security     BearerAuth
// @Param        filename  path  string  true  "Stored filename"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/documents/{filename} [delete]
func (h *DocumentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("filename")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
	"github.com/Asfa64/DOC-ASFA/internal/core/ports"
)

type stubDocumentService struct {
	uploadFn func(ctx context.Context, input ports.UploadDocumentInput) (*ports.DocumentResult, error)
	fetchFn  func(ctx context.Context, filename string) (io.ReadCloser, int64, error)
	deleteFn func(ctx context.Context, filename string) error
}

func (s *stubDocumentService) Upload(ctx context.Context, input ports.UploadDocumentInput) (*ports.DocumentResult, error) {
	return s.uploadFn(ctx, input)
}

func (s *stubDocumentService) Fetch(ctx context.Context, filename string) (io.ReadCloser, int64, error) {
	return s.fetchFn(ctx, filename)
}

func (s *stubDocumentService) Delete(ctx context.Context, filename string) error {
	return s.deleteFn(ctx, filename)
}

func TestDocumentHandler_Fetch(t *testing.T) {
	e := echo.New()
	handler := NewDocumentHandler(&stubDocumentService{
		fetchFn: func(_ context.Context, filename string) (io.ReadCloser, int64, error) {
			if filename != "guide.pdf" {
				t.Fatalf("unexpected filename: %q", filename)
			}
			return io.NopCloser(bytes.NewReader([]byte("%PDF-1.4 body"))), 13, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/guide.pdf", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("filename")
	c.SetParamValues("guide.pdf")

	if err := handler.Fetch(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("body does not start with PDF magic: %q", rec.Body.String())
	}
}

// A quote in the stored filename must not break out of the
// Content-Disposition quoted-string.
func TestDocumentHandler_Fetch_EscapesDispositionFilename(t *testing.T) {
	e := echo.New()
	name := `ev"il.pdf`
	handler := NewDocumentHandler(&stubDocumentService{
		fetchFn: func(_ context.Context, _ string) (io.ReadCloser, int64, error) {
			return io.NopCloser(bytes.NewReader([]byte("%PDF-"))), 5, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("filename")
	c.SetParamValues(name)

	if err := handler.Fetch(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	header := rec.Header().Get(echo.HeaderContentDisposition)
	mediatype, params, err := mime.ParseMediaType(header)
	if err != nil {
		t.Fatalf("unparseable Content-Disposition %q: %v", header, err)
	}
	if mediatype != "inline" {
		t.Fatalf("disposition type = %q, want inline", mediatype)
	}
	if params["filename"] != name {
		t.Fatalf("filename param = %q, want %q", params["filename"], name)
	}
}

func TestDocumentHandler_Fetch_NotFound(t *testing.T) {
	e := echo.New()
	handler := NewDocumentHandler(&stubDocumentService{
		fetchFn: func(_ context.Context, _ string) (io.ReadCloser, int64, error) {
			return nil, 0, domain.ErrDocumentNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/missing.pdf", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("filename")
	c.SetParamValues("missing.pdf")

	if err := handler.Fetch(c); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestDocumentHandler_Upload(t *testing.T) {
	e := echo.New()
	handler := NewDocumentHandler(&stubDocumentService{
		uploadFn: func(_ context.Context, input ports.UploadDocumentInput) (*ports.DocumentResult, error) {
			if input.OriginalName != "manual.pdf" {
				t.Fatalf("unexpected original name: %q", input.OriginalName)
			}
			return &ports.DocumentResult{Filename: "1700000000000-a1b2c3-manual.pdf", OriginalName: "manual.pdf", Size: input.Size}, nil
		},
	})

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "manual.pdf")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := part.Write([]byte("%PDF-1.4 content")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/documents", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Upload(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp uploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Filename != "1700000000000-a1b2c3-manual.pdf" || resp.OriginalName != "manual.pdf" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestDocumentHandler_Upload_MissingFile(t *testing.T) {
	e := echo.New()
	handler := NewDocumentHandler(&stubDocumentService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/documents", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Upload(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestDocumentHandler_Delete_NotFound(t *testing.T) {
	e := echo.New()
	handler := NewDocumentHandler(&stubDocumentService{
		deleteFn: func(_ context.Context, _ string) error {
			return domain.ErrDocumentNotFound
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/documents/missing.pdf", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("filename")
	c.SetParamValues("missing.pdf")

	if err := handler.Delete(c); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

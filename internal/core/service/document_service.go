package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
	"github.com/Asfa64/DOC-ASFA/internal/core/ports"
)

// MaxDocumentBytes caps uploaded PDFs at 10MB.
const MaxDocumentBytes = 10 * 1024 * 1024

var pdfMagic = []byte("%PDF-")

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// DocumentService stores and serves the PDF blobs behind pdf button links.
type DocumentService struct {
	blobs  ports.BlobStore
	logger zerolog.Logger
}

func NewDocumentService(blobs ports.BlobStore, logger zerolog.Logger) *DocumentService {
	return &DocumentService{blobs: blobs, logger: logger}
}

// Upload validates the content as a PDF within the size cap, stores it
// under a generated unique filename and returns that filename for use in a
// button link. The blob exists before any button record referencing it is
// written.
func (s *DocumentService) Upload(ctx context.Context, input ports.UploadDocumentInput) (*ports.DocumentResult, error) {
	if input.Size > MaxDocumentBytes {
		return nil, domain.ErrInvalidDocument
	}

	// Read one byte past the cap so an understated Content-Length still
	// gets caught.
	data, err := io.ReadAll(io.LimitReader(input.Content, MaxDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxDocumentBytes || !bytes.HasPrefix(data, pdfMagic) {
		return nil, domain.ErrInvalidDocument
	}

	filename := uniqueFilename(input.OriginalName)
	if err := s.blobs.Put(ctx, filename, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}

	s.logger.Info().Str("filename", filename).Int("size", len(data)).Msg("document uploaded")
	return &ports.DocumentResult{
		Filename:     filename,
		OriginalName: input.OriginalName,
		Size:         int64(len(data)),
	}, nil
}

func (s *DocumentService) Fetch(ctx context.Context, filename string) (io.ReadCloser, int64, error) {
	return s.blobs.Get(ctx, filename)
}

func (s *DocumentService) Delete(ctx context.Context, filename string) error {
	if err := s.blobs.Delete(ctx, filename); err != nil {
		return err
	}
	s.logger.Info().Str("filename", filename).Msg("document deleted")
	return nil
}

// uniqueFilename builds "<unix-ms>-<random>-<sanitized original name>".
func uniqueFilename(originalName string) string {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		// fallback: nanosecond tail keeps the name unique enough
		return fmt.Sprintf("%d-%06x-%s",
			time.Now().UnixMilli(),
			time.Now().UnixNano()&0xFFFFFF,
			unsafeFilenameChars.ReplaceAllString(originalName, "_"))
	}
	return fmt.Sprintf("%d-%s-%s",
		time.Now().UnixMilli(),
		hex.EncodeToString(b),
		unsafeFilenameChars.ReplaceAllString(originalName, "_"))
}

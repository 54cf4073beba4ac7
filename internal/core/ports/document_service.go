package ports

import (
	"context"
	"io"
)

// UploadDocumentInput carries an incoming PDF upload. Size is the declared
// content length; the service enforces the cap while reading.
type UploadDocumentInput struct {
	OriginalName string
	Size         int64
	Content      io.Reader
}

// DocumentResult describes a stored PDF blob.
type DocumentResult struct {
	Filename     string
	OriginalName string
	Size         int64
}

// DocumentService manages the PDF blobs referenced by pdf button links.
// Uploads complete before the owning button record is written; a failed
// record write afterwards leaves the blob orphaned (accepted, no rollback).
type DocumentService interface {
	Upload(ctx context.Context, input UploadDocumentInput) (*DocumentResult, error)
	// Fetch streams a stored PDF. The caller closes the reader.
	Fetch(ctx context.Context, filename string) (io.ReadCloser, int64, error)
	Delete(ctx context.Context, filename string) error
}

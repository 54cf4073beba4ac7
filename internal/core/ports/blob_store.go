package ports

import (
	"context"
	"io"
)

// BlobStore is the document blob store backing PDF button links. Keys are
// the generated unique filenames.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader) error
	// Get returns the blob content and its size. ErrDocumentNotFound when
	// the key is absent.
	Get(ctx context.Context, key string) (io.ReadCloser, int64, error)
	Delete(ctx context.Context, key string) error
}

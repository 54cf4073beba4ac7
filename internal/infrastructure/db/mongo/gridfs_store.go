package mongo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
)

const documentsBucket = "documents"

// GridFSStore keeps uploaded PDFs in a GridFS bucket, keyed by the unique
// filename the document service generates.
type GridFSStore struct {
	bucket *gridfs.Bucket
}

func NewGridFSStore(db *mongo.Database) (*GridFSStore, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(documentsBucket))
	if err != nil {
		return nil, fmt.Errorf("gridfs bucket: %w", err)
	}
	return &GridFSStore{bucket: bucket}, nil
}

// Put streams the blob into the bucket. The gridfs API manages its own
// deadlines, so the context only scopes the surrounding call.
func (s *GridFSStore) Put(_ context.Context, key string, r io.Reader) error {
	if err := s.bucket.UploadFromStreamWithID(primitive.NewObjectID(), key, r); err != nil {
		return fmt.Errorf("gridfs upload %s: %w", key, err)
	}
	return nil
}

func (s *GridFSStore) Get(_ context.Context, key string) (io.ReadCloser, int64, error) {
	stream, err := s.bucket.OpenDownloadStreamByName(key)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, 0, domain.ErrDocumentNotFound
		}
		return nil, 0, fmt.Errorf("gridfs open %s: %w", key, err)
	}
	return stream, stream.GetFile().Length, nil
}

func (s *GridFSStore) Delete(ctx context.Context, key string) error {
	cursor, err := s.bucket.Find(bson.M{"filename": key})
	if err != nil {
		return fmt.Errorf("gridfs find %s: %w", key, err)
	}
	defer cursor.Close(ctx)

	deleted := false
	for cursor.Next(ctx) {
		var file struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&file); err != nil {
			return fmt.Errorf("gridfs decode %s: %w", key, err)
		}
		if err := s.bucket.Delete(file.ID); err != nil {
			return fmt.Errorf("gridfs delete %s: %w", key, err)
		}
		deleted = true
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("gridfs find %s: %w", key, err)
	}
	if !deleted {
		return domain.ErrDocumentNotFound
	}
	return nil
}

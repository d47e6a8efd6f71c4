package storage

import (
	"context"
	"io"
)

// FileStorage is the port for document file bytes. The local implementation
// serves development and single-instance deployments; a cloud bucket
// implementation can be swapped in without touching callers.
type FileStorage interface {
	Save(ctx context.Context, key string, content io.Reader) error
	Read(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, int64, error)
	Delete(ctx context.Context, key string) error
}

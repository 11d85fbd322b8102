package storage

import (
	"context"
	"io"
)

// Store is a flat file store addressed by slash separated relative paths.
type Store interface {
	// Save replaces the file at path with the reader's content and returns
	// the number of bytes written.
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	// List returns the files directly inside dir.
	List(ctx context.Context, dir string) ([]string, error)
}

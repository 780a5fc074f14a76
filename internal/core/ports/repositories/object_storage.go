package repositories

import (
	"context"
	"io"
)

// ObjectStorage persists attachment bytes under a caller-chosen key.
type ObjectStorage interface {
	// Put writes body under key and returns the reference to keep on the entry.
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)

	// Delete removes the object stored under ref.
	Delete(ctx context.Context, ref string) error
}

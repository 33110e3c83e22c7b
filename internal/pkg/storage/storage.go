package storage

import (
	"context"
	"io"
)

// FileStorage persists uploaded attendance photos.
type FileStorage interface {
	// Upload stores the content under path and returns the stored key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// URL returns the public URL for a stored key.
	URL(path string) string

	// Key is the inverse of URL. It returns ErrInvalidPath for URLs this
	// storage did not issue.
	Key(url string) (string, error)
}

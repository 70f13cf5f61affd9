package storage

import (
	"context"
	"io"
)

// ImageStorage defines the interface for dress image storage backends.
type ImageStorage interface {
	// NewKey produces a unique storage key for a dress image with the given
	// file extension (e.g. ".jpg").
	NewKey(dressID int32, ext string) string

	// SaveFile writes an uploaded image under the given key
	SaveFile(key string, reader io.Reader) error

	// ReadFile opens a stored image for reading
	ReadFile(key string) (io.ReadCloser, error)

	// FileExists checks if an image exists and returns its size
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes an image from storage
	DeleteFile(ctx context.Context, key string) error
}

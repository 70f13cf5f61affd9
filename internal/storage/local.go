package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStorage implements image storage on the local filesystem.
type LocalStorage struct {
	uploadsDir string // Local directory for uploads (e.g., "./uploads")
	imagesDir  string // Subdirectory for dress images
}

// NewLocalStorage creates a filesystem-backed image store
func NewLocalStorage(uploadsDir string) (*LocalStorage, error) {
	imagesDir := filepath.Join(uploadsDir, "images")

	// Create directories if they don't exist
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	return &LocalStorage{
		uploadsDir: uploadsDir,
		imagesDir:  imagesDir,
	}, nil
}

// NewKey produces a unique storage key for a dress image
func (l *LocalStorage) NewKey(dressID int32, ext string) string {
	return fmt.Sprintf("dresses/%d/%s%s", dressID, uuid.New().String(), ext)
}

// SaveFile saves an uploaded image to the local filesystem
func (l *LocalStorage) SaveFile(key string, reader io.Reader) error {
	fullPath := filepath.Join(l.imagesDir, filepath.Clean(key))

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err = io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// ReadFile opens a stored image from the local filesystem
func (l *LocalStorage) ReadFile(key string) (io.ReadCloser, error) {
	fullPath := filepath.Join(l.imagesDir, filepath.Clean(key))

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// FileExists checks if an image exists in the local filesystem
func (l *LocalStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	fullPath := filepath.Join(l.imagesDir, filepath.Clean(key))

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}

	return true, info.Size(), nil
}

// DeleteFile removes an image from the local filesystem
func (l *LocalStorage) DeleteFile(ctx context.Context, key string) error {
	fullPath := filepath.Join(l.imagesDir, filepath.Clean(key))

	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

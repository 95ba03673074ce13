// Package storage provides the on-disk store for uploaded pet images.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage errors.
var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrInvalidFilename = errors.New("invalid image filename")
)

// allowedExtensions lists the accepted upload extensions.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ImageStore persists uploaded images on local disk. Stored names are
// generated server-side; client-supplied names only contribute the
// extension.
type ImageStore struct {
	dir string
}

// NewImageStore creates the image directory if needed and returns a store.
func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

// Save writes an uploaded image and returns the generated filename.
func (s *ImageStore) Save(src io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}

	filename := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close image file: %w", err)
	}

	return filename, nil
}

// Remove deletes a stored image. A missing file is not an error: removal
// is best-effort cleanup after the owning record is gone.
func (s *ImageStore) Remove(filename string) error {
	if filename == "" || filename != filepath.Base(filename) {
		return ErrInvalidFilename
	}

	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove image file: %w", err)
	}

	return nil
}

// Exists reports whether a stored image is present on disk.
func (s *ImageStore) Exists(filename string) bool {
	if filename == "" || filename != filepath.Base(filename) {
		return false
	}
	_, err := os.Stat(filepath.Join(s.dir, filename))
	return err == nil
}

// Dir returns the directory images are stored in, for static serving.
func (s *ImageStore) Dir() string {
	return s.dir
}

// Package storage keeps uploaded images on the local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/esophai/internal/logger"
)

// ErrNotFound is returned when a stored file does not exist or the name is not a plain file name.
var ErrNotFound = errors.New("file not found")

var allowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
}

// AllowedExtension returns the lower-cased extension of filename and whether
// it is one of png, jpg, jpeg or gif.
func AllowedExtension(filename string) (string, bool) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return "", false
	}
	ext := strings.ToLower(filename[idx+1:])
	_, ok := allowedExtensions[ext]
	return ext, ok
}

// UploadStore saves uploads under unique names inside one directory
type UploadStore struct {
	dir string
}

// NewUploadStore creates the directory if needed.
func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &UploadStore{dir: dir}, nil
}

// Dir returns the upload directory.
func (s *UploadStore) Dir() string {
	return s.dir
}

// Save writes src to a new file named temp<32 hex chars>.<ext> and returns that name.
// A partially written file is removed.
func (s *UploadStore) Save(ext string, src io.Reader) (string, error) {
	name := "temp" + strings.ReplaceAll(uuid.NewString(), "-", "") + "." + ext

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}

	written, err := io.Copy(f, src)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(filepath.Join(s.dir, name))
		logger.Log.Errorw("failed to store upload", "file", name, "error", err)
		return "", err
	}

	logger.Log.Infow("upload stored", "file", name, "bytes", written)
	return name, nil
}

// Open opens a stored file for reading.
func (s *UploadStore) Open(name string) (*os.File, error) {
	if !validName(name) {
		return nil, ErrNotFound
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, ErrNotFound
	}

	return f, nil
}

// Remove deletes a stored file. Removing a missing file is not an error.
func (s *UploadStore) Remove(name string) error {
	if !validName(name) {
		return ErrNotFound
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	logger.Log.Infow("upload removed", "file", name, "error", err)
	return err
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}

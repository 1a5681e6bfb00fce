package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/matzehuels/identicon/pkg/errors"
)

// FileStore writes artifacts into a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a store writing into dir, creating it if needed.
// An empty dir means the current working directory.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIOFailure, err, "create output dir %s", dir)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes data to <dir>/<name> and returns the full path. Write
// failures (permission, disk full, invalid path) surface unchanged.
func (s *FileStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrap(errors.ErrCodeIOFailure, err, "write %s", path)
	}
	return path, nil
}

// Close does nothing for file stores.
func (s *FileStore) Close() error {
	return nil
}

// Dir returns the output directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)

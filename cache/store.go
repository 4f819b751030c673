package cache

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Store persists the holiday cache as a single opaque blob.
// Load returns a nil blob when nothing has been persisted yet.
type Store interface {
	Load() ([]byte, error)
	Save(blob []byte) error
}

// FileStore keeps the blob in one file on the local filesystem.
type FileStore struct {
	Path string
}

func (s *FileStore) Load() ([]byte, error) {
	blob, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read the cache file %s", s.Path)
	}
	return blob, nil
}

func (s *FileStore) Save(blob []byte) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create the cache directory %s", dir)
		}
	}
	if err := os.WriteFile(s.Path, blob, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write the cache file %s", s.Path)
	}
	return nil
}

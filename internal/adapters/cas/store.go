// Package cas implements the content-addressed incremental build cache.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/bakery/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.HashStore = (*Store)(nil)

// Store implements ports.HashStore with one JSON file per project.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the cache of the project rooted at root.
func (s *Store) Load(root string) (domain.Hashes, error) {
	filename := s.getFilename(root)
	//nolint:gosec // Path is constructed from the project root and a fixed layout
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Hashes{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrHashesReadFailed.Error()), "path", filename)
	}

	hashes := domain.Hashes{}
	if err := json.Unmarshal(data, &hashes); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrHashesUnmarshalFailed.Error()), "path", filename)
	}

	return hashes, nil
}

// Save replaces the cache of the project rooted at root. The file is written next to
// its final location and renamed over it, so a reader sees either the old or the new
// snapshot.
func (s *Store) Save(root string, hashes domain.Hashes) error {
	data, err := json.MarshalIndent(hashes, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrHashesWriteFailed.Error())
	}

	filename := s.getFilename(root)
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCreateDirectoryFailed.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, domain.HashesFileName+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrHashesWriteFailed.Error()), "path", filename)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // No-op once renamed

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrHashesWriteFailed.Error()), "path", filename)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrHashesWriteFailed.Error()), "path", filename)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrHashesWriteFailed.Error()), "path", filename)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrHashesWriteFailed.Error()), "path", filename)
	}

	return nil
}

func (s *Store) getFilename(root string) string {
	return filepath.Join(root, domain.DefaultHashesPath())
}

package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	apperrors "options-desk/internal/errors"
	"options-desk/internal/models"
)

// FileStore persists the order collection as a JSON array. Dates travel as
// ISO 8601 strings and parse back to timestamps on load.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed order store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file backing the store.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored order collection. A missing file is an empty
// collection; unparseable contents surface as ErrMalformedState so the
// caller can fall back to the seed set.
func (s *FileStore) Load() ([]*models.Order, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperrors.NewStorageError("load", s.path, err)
	}

	var orders []*models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrMalformedState, "parsing %s: %v", s.path, err)
	}
	return orders, nil
}

// Save writes the full order collection atomically (temp file + rename), so
// a concurrent reader never observes a half-written collection.
func (s *FileStore) Save(orders []*models.Order) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return apperrors.NewStorageError("save", s.path, err)
	}

	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return apperrors.NewStorageError("save", s.path, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return apperrors.NewStorageError("save", s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return apperrors.NewStorageError("save", s.path, err)
	}
	return nil
}

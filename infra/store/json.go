package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"
)

// JSONStore keeps the dataset in a single JSON file. Reads parse the whole
// file; Seed rewrites it atomically via a temp file rename.
type JSONStore struct {
	path string
	mu   sync.Mutex
}

// NewJSONStore prepares a store at path. A missing file is valid and reads as
// an empty dataset until seeded.
func NewJSONStore(path string) (*JSONStore, error) {
	if path == "" {
		return nil, errors.New("store: path is required")
	}
	return &JSONStore{path: path}, nil
}

// Load reads and parses the dataset file.
func (s *JSONStore) Load(ctx context.Context) (Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Dataset{}, nil
		}
		return Dataset{}, err
	}
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// Seed writes the dataset, replacing any previous content.
func (s *JSONStore) Seed(ctx context.Context, ds Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Close is a no-op for the file-backed store.
func (s *JSONStore) Close() error { return nil }

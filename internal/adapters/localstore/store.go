package localstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dentaltrack/backend/internal/domain/providers"
)

// Store is a filesystem-backed slot store: one JSON file per collection under
// the data directory. Writes go through a temp file and rename so a crashed
// write never leaves a half-written slot.
type Store struct {
	dir string
}

// New creates a filesystem slot store rooted at dir, creating it if needed
func New(dir string) (*Store, error) {
	if dir == "" {
		dir = "data"
	}
	if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

var _ providers.SlotStore = (*Store)(nil)

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Read returns the slot file's contents; ok is false when the file is absent
func (s *Store) Read(_ context.Context, key string) ([]byte, bool, error) {
	payload, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read slot %s: %w", key, err)
	}
	return payload, true, nil
}

// Write replaces the slot file atomically
func (s *Store) Write(_ context.Context, key string, payload []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}

// Delete removes the slot file; a missing file is not an error
func (s *Store) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete slot %s: %w", key, err)
	}
	return nil
}

// Close is a no-op for the filesystem store
func (s *Store) Close() error {
	return nil
}

package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps each slot as a JSON file under a data directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a
// file-backed store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) slotPath(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}

// Load reads a slot file. A missing file means the slot was never
// written and yields nil.
func (s *FileStore) Load(slot string) ([]byte, error) {
	data, err := os.ReadFile(s.slotPath(slot))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s snapshot: %w", slot, err)
	}
	return data, nil
}

// Save writes the snapshot atomically: temp file then rename, so a
// crash mid-write never leaves a truncated slot behind.
func (s *FileStore) Save(slot string, data []byte) error {
	path := s.slotPath(slot)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("writing %s snapshot: %w", slot, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing %s snapshot: %w", slot, err)
	}
	return nil
}

// Close is a no-op; slot files hold no open handles.
func (s *FileStore) Close() error {
	return nil
}

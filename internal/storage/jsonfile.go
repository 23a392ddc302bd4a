package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-pairs/internal/leaderboard"
)

// FileStore persists the leaderboard as one JSON document. Saves go through
// a temp file and rename, so readers never observe a half-written table.
type FileStore struct {
	path string
}

// OpenJSON prepares a JSON file store at the given path, creating parent
// directories if needed. The file itself is created on first save.
func OpenJSON(path string) (*FileStore, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	return &FileStore{path: path}, nil
}

// Load reads the persisted table. A missing or malformed file loads as an
// empty table, never an error.
func (f *FileStore) Load() (leaderboard.Table, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return leaderboard.Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	var table leaderboard.Table
	if err := json.Unmarshal(data, &table); err != nil {
		// Unreadable records start over empty
		return leaderboard.Table{}, nil
	}
	if table == nil {
		table = leaderboard.Table{}
	}
	return table, nil
}

// Save replaces the persisted table atomically.
func (f *FileStore) Save(table leaderboard.Table) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: cannot encode leaderboard: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".pairs-*.json")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: cannot write leaderboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: cannot close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: cannot replace %s: %w", f.path, err)
	}
	return nil
}

// Close releases nothing; the file is only held open during Load and Save.
func (f *FileStore) Close() error {
	return nil
}

// Ensure FileStore implements leaderboard.Store
var _ leaderboard.Store = (*FileStore)(nil)

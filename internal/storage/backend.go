package storage

import (
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-pairs/internal/leaderboard"
)

// Backend is a score store that may hold resources needing release.
type Backend interface {
	leaderboard.Store
	Close() error
}

// OpenAuto selects a backend by file extension: ".json" gets the plain-file
// store, anything else the SQLite store.
func OpenAuto(path string) (Backend, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return OpenJSON(path)
	}
	return Open(path)
}

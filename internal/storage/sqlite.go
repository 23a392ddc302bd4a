// Package storage provides persistence backends for the leaderboard.
// The SQLite backend uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies; a JSON file backend covers installs without a database
// file. Both satisfy leaderboard.Store.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-pairs/internal/leaderboard"
)

// Store manages the SQLite database connection for leaderboard persistence.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
// Rank is the entry's position within its board, so (board_key, rank) is
// the natural primary key for a table that is always saved whole.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS leaderboard (
			board_key    TEXT NOT NULL,
			rank         INTEGER NOT NULL,
			name         TEXT NOT NULL,
			moves        INTEGER NOT NULL,
			elapsed_secs INTEGER NOT NULL,
			PRIMARY KEY (board_key, rank)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads every ranked table from the database.
func (s *Store) Load() (leaderboard.Table, error) {
	rows, err := s.db.Query(
		`SELECT board_key, name, moves, elapsed_secs
		 FROM leaderboard
		 ORDER BY board_key, rank`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	table := leaderboard.Table{}
	for rows.Next() {
		var key string
		var e leaderboard.Entry
		if err := rows.Scan(&key, &e.Name, &e.Moves, &e.ElapsedSeconds); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		table[key] = append(table[key], e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return table, nil
}

// Save replaces the persisted leaderboard with the given table in one
// transaction.
func (s *Store) Save(table leaderboard.Table) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM leaderboard"); err != nil {
		return fmt.Errorf("storage: cannot clear leaderboard: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO leaderboard (board_key, rank, name, moves, elapsed_secs)
		 VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for key, entries := range table {
		for rank, e := range entries {
			if _, err := stmt.Exec(key, rank+1, e.Name, e.Moves, e.ElapsedSeconds); err != nil {
				return fmt.Errorf("storage: cannot save entry for %s: %w", key, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit leaderboard: %w", err)
	}
	return nil
}

// Ensure Store implements leaderboard.Store
var _ leaderboard.Store = (*Store)(nil)

// Package store persists a vocabulary notebook of past lookups in a SQLite
// database, so learners can review what they asked about.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded lookup.
type Entry struct {
	ID         int64
	Text       string
	Result     string
	Capability string
	Mode       string
	CreatedAt  time.Time
}

// Store wraps the notebook database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the notebook database at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create notebook directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open notebook database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS lookups (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		text TEXT NOT NULL,
		result TEXT NOT NULL,
		capability TEXT NOT NULL,
		mode TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_lookups_created_at ON lookups(created_at);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create notebook schema: %w", err)
	}
	return nil
}

// Record appends a lookup to the notebook.
func (s *Store) Record(text, result, capability, mode string) error {
	_, err := s.db.Exec(
		`INSERT INTO lookups (text, result, capability, mode, created_at) VALUES (?, ?, ?, ?, ?)`,
		text, result, capability, mode, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record lookup: %w", err)
	}
	return nil
}

// Recent returns the most recent lookups, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, text, result, capability, mode, created_at FROM lookups ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query notebook: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Text, &e.Result, &e.Capability, &e.Mode, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notebook row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

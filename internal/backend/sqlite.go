package backend

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements SettingsStore over a local SQLite database, giving
// the standalone CLI a real settings store. A host editor adapter can replace
// it; the registry only sees the SettingsStore interface.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite creates or opens the settings database at the given path, runs
// schema initialization, and configures WAL mode.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create settings db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite handles one writer at a time

	schema := `CREATE TABLE IF NOT EXISTS settings (
		collection TEXT NOT NULL,
		property   TEXT NOT NULL,
		value      TEXT NOT NULL,
		PRIMARY KEY (collection, property)
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get returns the value of a property and whether it exists.
func (s *SQLiteStore) Get(collection, property string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		`SELECT value FROM settings WHERE collection = ? AND property = ?`,
		collection, property,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %s/%s: %w", collection, property, err)
	}
	return value, true, nil
}

// Set stores a property value, creating or replacing it.
func (s *SQLiteStore) Set(collection, property, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (collection, property, value) VALUES (?, ?, ?)
		 ON CONFLICT (collection, property) DO UPDATE SET value = excluded.value`,
		collection, property, value,
	)
	if err != nil {
		return fmt.Errorf("set setting %s/%s: %w", collection, property, err)
	}
	return nil
}

// Delete removes a property. Deleting a missing property is not an error.
func (s *SQLiteStore) Delete(collection, property string) error {
	_, err := s.db.Exec(
		`DELETE FROM settings WHERE collection = ? AND property = ?`,
		collection, property,
	)
	if err != nil {
		return fmt.Errorf("delete setting %s/%s: %w", collection, property, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Package db persists the clipboard aggregate
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteBackend keeps the clipboard blob in a single-row sqlite table.
// Every write replaces the whole blob, same as the file backend.
type SQLiteBackend struct {
	*sqlx.DB
	path string
}

// NewSQLiteBackend creates a backend for the database at path.
// The database is opened lazily.
func NewSQLiteBackend(path string) *SQLiteBackend {
	return &SQLiteBackend{path: path}
}

// open opens or creates the database
func (b *SQLiteBackend) open() error {
	if b.DB != nil {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sqlx.Open("sqlite3", b.path+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	b.DB = db

	if err := b.migrate(); err != nil {
		db.Close()
		b.DB = nil
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// migrate runs database migrations
func (b *SQLiteBackend) migrate() error {
	migrations := []string{
		migrationClipboardBlob,
	}

	for _, m := range migrations {
		if _, err := b.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

func (b *SQLiteBackend) Exists() (bool, error) {
	if _, err := os.Stat(b.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := b.open(); err != nil {
		return false, err
	}

	var count int
	if err := b.Get(&count, `SELECT COUNT(*) FROM clipboard_blob WHERE id = 1`); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (b *SQLiteBackend) Init() error {
	return b.open()
}

func (b *SQLiteBackend) Read() ([]byte, error) {
	if err := b.open(); err != nil {
		return nil, err
	}

	var data []byte
	err := b.Get(&data, `SELECT data FROM clipboard_blob WHERE id = 1`)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no clipboard stored in %s: %w", b.path, os.ErrNotExist)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (b *SQLiteBackend) Write(data []byte) error {
	if err := b.open(); err != nil {
		return err
	}

	query := `
		INSERT INTO clipboard_blob (id, data, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`
	_, err := b.Exec(query, data)
	return err
}

// Close closes the database if it was opened
func (b *SQLiteBackend) Close() error {
	if b.DB == nil {
		return nil
	}
	err := b.DB.Close()
	b.DB = nil
	return err
}

func (b *SQLiteBackend) Location() string { return b.path }

const migrationClipboardBlob = `
CREATE TABLE IF NOT EXISTS clipboard_blob (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    data BLOB NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

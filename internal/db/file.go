package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Backend holds the raw clipboard bytes
type Backend interface {
	// Exists reports whether the storage location has been initialized
	Exists() (bool, error)
	// Init creates the storage location
	Init() error
	Read() ([]byte, error)
	// Write replaces the stored bytes in full
	Write(data []byte) error
	Close() error
	// Location is a human readable description of where data lives
	Location() string
}

// FileBackend keeps the clipboard in a single file
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend for the file at path
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) Exists() (bool, error) {
	_, err := os.Stat(b.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (b *FileBackend) Init() error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		return fmt.Errorf("failed to create clipboard directory: %w", err)
	}
	return nil
}

func (b *FileBackend) Read() ([]byte, error) {
	return os.ReadFile(b.path)
}

// Write goes through a temp file in the same directory and a rename,
// so readers see either the old or the new blob.
func (b *FileBackend) Write(data []byte) error {
	dir := filepath.Dir(b.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func (b *FileBackend) Close() error { return nil }

func (b *FileBackend) Location() string { return b.path }

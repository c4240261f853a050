package db

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AbdouB/clipper/internal/config"
	"github.com/AbdouB/clipper/internal/models"
	"go.uber.org/zap"
)

// Store loads and saves the clipboard aggregate through a Backend.
// It holds no clipboard state of its own: callers load once, mutate the
// returned snapshot, and save it back.
type Store struct {
	backend Backend
	codec   Codec
	logger  *zap.Logger
}

// NewStore creates a store over an explicit backend and codec
func NewStore(backend Backend, codec Codec, logger *zap.Logger) *Store {
	if codec == nil {
		codec = JSONCodec{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{backend: backend, codec: codec, logger: logger}
}

// Open builds the store described by cfg
func Open(cfg config.Config, logger *zap.Logger) (*Store, error) {
	var backend Backend
	switch cfg.StorageBackend {
	case config.BackendFile:
		backend = NewFileBackend(cfg.StoragePath())
	case config.BackendSQLite:
		path := cfg.StoragePath()
		path = strings.TrimSuffix(path, filepath.Ext(path)) + ".db"
		backend = NewSQLiteBackend(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
	return NewStore(backend, JSONCodec{}, logger), nil
}

// Location returns where the clipboard is persisted
func (s *Store) Location() string {
	return s.backend.Location()
}

// EnsureInitialized creates the storage location with an empty clipboard
// when it does not exist yet. Safe to call on every invocation.
func (s *Store) EnsureInitialized() error {
	exists, err := s.backend.Exists()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, s.backend.Location(), err)
	}
	if exists {
		return nil
	}

	if err := s.backend.Init(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrStorageWrite, s.backend.Location(), err)
	}
	if err := s.Save(models.NewClipboard()); err != nil {
		return err
	}

	s.logger.Info("initialized clipboard storage", zap.String("location", s.backend.Location()))
	return nil
}

// Load reads and decodes the persisted clipboard
func (s *Store) Load() (*models.Clipboard, error) {
	data, err := s.backend.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, s.backend.Location(), err)
	}

	clipboard, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.backend.Location(), err)
	}

	s.logger.Debug("loaded clipboard",
		zap.Int("clips", clipboard.Len()),
		zap.Int("text_clips", len(clipboard.TextClips)),
		zap.Int("image_clips", len(clipboard.ImageClips)),
	)
	return clipboard, nil
}

// Save overwrites the persisted clipboard in full
func (s *Store) Save(clipboard *models.Clipboard) error {
	data, err := s.codec.Encode(clipboard)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrStorageWrite, err)
	}
	if err := s.backend.Write(data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrStorageWrite, s.backend.Location(), err)
	}

	s.logger.Debug("saved clipboard", zap.Int("bytes", len(data)))
	return nil
}

// Close releases the backend
func (s *Store) Close() error {
	return s.backend.Close()
}

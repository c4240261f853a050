package dispatch

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/AbdouB/clipper/internal/config"
	"github.com/AbdouB/clipper/internal/models"
)

func testConfig() config.Config {
	return config.Config{
		AppID:          "clipper",
		StorageDir:     "/data/clipper",
		StorageFile:    "clipboard.json",
		StorageBackend: config.BackendFile,
		IconDir:        filepath.Join("/icons"),
	}
}

func seededClipboard() *models.Clipboard {
	clipboard := models.NewClipboard()
	clipboard.AddText("Snippet A", "hello")
	clipboard.AddText("Robot Notes", "beep")
	clipboard.AddImage("Snippet Screenshot", "/pics/shot.png")
	clipboard.AddImage("Cat", "/pics/cat.webp")
	return clipboard
}

// memoryStore counts every load and save
type memoryStore struct {
	clipboard *models.Clipboard
	loads     int
	saves     int
	inits     int
	loadErr   error
	saveErr   error
}

func (s *memoryStore) EnsureInitialized() error {
	s.inits++
	if s.clipboard == nil {
		s.clipboard = models.NewClipboard()
	}
	return nil
}

func (s *memoryStore) Load() (*models.Clipboard, error) {
	s.loads++
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.clipboard.Clone(), nil
}

func (s *memoryStore) Save(clipboard *models.Clipboard) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.clipboard = clipboard.Clone()
	return nil
}

type recordingWriter struct {
	paths []string
	err   error
}

func (w *recordingWriter) WriteImage(_ context.Context, path string) error {
	if w.err != nil {
		return w.err
	}
	w.paths = append(w.paths, path)
	return nil
}

var errDisk = errors.New("disk on fire")

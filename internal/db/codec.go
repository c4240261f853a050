package db

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/AbdouB/clipper/internal/models"
)

// Codec converts the clipboard aggregate to and from its stored bytes
type Codec interface {
	Encode(clipboard *models.Clipboard) ([]byte, error)
	Decode(data []byte) (*models.Clipboard, error)
}

// JSONCodec stores the clipboard as a single JSON document
type JSONCodec struct{}

// Encode serializes the whole clipboard
func (JSONCodec) Encode(clipboard *models.Clipboard) ([]byte, error) {
	if clipboard == nil {
		clipboard = models.NewClipboard()
	}
	normalized := *clipboard
	if normalized.TextClips == nil {
		normalized.TextClips = []models.TextClip{}
	}
	if normalized.ImageClips == nil {
		normalized.ImageClips = []models.ImageClip{}
	}
	return json.MarshalIndent(&normalized, "", "  ")
}

// Decode parses a clipboard, rejecting anything that does not match the schema
func (JSONCodec) Decode(data []byte) (*models.Clipboard, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var clipboard *models.Clipboard
	if err := dec.Decode(&clipboard); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageCorrupt, err)
	}
	if clipboard == nil {
		return nil, fmt.Errorf("%w: document is null", ErrStorageCorrupt)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after clipboard", ErrStorageCorrupt)
	}

	if clipboard.TextClips == nil {
		clipboard.TextClips = []models.TextClip{}
	}
	if clipboard.ImageClips == nil {
		clipboard.ImageClips = []models.ImageClip{}
	}

	if err := checkIDs(clipboard.TextClips); err != nil {
		return nil, fmt.Errorf("%w: text clips: %v", ErrStorageCorrupt, err)
	}
	if err := checkIDs(clipboard.ImageClips); err != nil {
		return nil, fmt.Errorf("%w: image clips: %v", ErrStorageCorrupt, err)
	}

	return clipboard, nil
}

// checkIDs enforces non-negative, unique ids within one collection
func checkIDs[T models.Record](items []T) error {
	seen := make(map[int]struct{}, len(items))
	for _, item := range items {
		id := item.RecordID()
		if id < 0 {
			return fmt.Errorf("negative id %d", id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate id %d", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

package db

import "errors"

var (
	// ErrStorageUnavailable means the persisted clipboard could not be read
	ErrStorageUnavailable = errors.New("clipboard storage unavailable")
	// ErrStorageCorrupt means the persisted bytes do not decode to a clipboard
	ErrStorageCorrupt = errors.New("clipboard storage corrupt")
	// ErrStorageWrite means the clipboard could not be persisted
	ErrStorageWrite = errors.New("clipboard storage write failed")
)

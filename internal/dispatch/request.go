package dispatch

import (
	"fmt"

	"github.com/AbdouB/clipper/internal/models"
)

// RequestKind tells a search request from a command request
type RequestKind string

const (
	KindSearch  RequestKind = "search"
	KindCommand RequestKind = "command"
)

// Form holds submitted dialog values keyed by field id
type Form map[string]string

// Request is one host invocation
type Request struct {
	Kind       RequestKind `json:"kind"`
	SearchText string      `json:"search_text,omitempty"`
	Command    string      `json:"command,omitempty"`
	Args       []string    `json:"args,omitempty"`
	Form       Form        `json:"form,omitempty"`
}

// Validate checks the request shape before dispatch
func (r Request) Validate() error {
	switch r.Kind {
	case KindSearch:
		return nil
	case KindCommand:
		if r.Command == "" {
			return fmt.Errorf("%w: command request without a command name", ErrMalformedArgument)
		}
		return nil
	default:
		return fmt.Errorf("%w: request kind %q", ErrMalformedArgument, r.Kind)
	}
}

// Response is the result of handling a request.
// Search requests fill Results; command requests fill Outcome.
type Response struct {
	Results []models.Result
	Outcome *Outcome
}

// Outcome describes what a command did to the clipboard
type Outcome struct {
	Command Command
	// Clipboard is the snapshot to persist; never the caller's input
	Clipboard *models.Clipboard
	// Changed is false for edits and deletes of ids that do not exist
	Changed bool
	// ClipID is the id that was added, edited, deleted or copied
	ClipID int
	// CopyPath is set for copy-image
	CopyPath string
}

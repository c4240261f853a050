// Package dispatch turns host requests into clipboard reads and mutations.
//
// Handle and its helpers are pure: they take a clipboard snapshot and a
// request and return results or a new snapshot. Service wraps them with
// storage and the clipboard writer.
package dispatch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AbdouB/clipper/internal/config"
	"github.com/AbdouB/clipper/internal/models"
	"github.com/AbdouB/clipper/internal/search"
)

// NeedsClipboard reports whether handling req reads the stored clipboard.
// Empty default-mode searches never touch storage.
func NeedsClipboard(req Request) bool {
	if req.Kind != KindSearch {
		return true
	}
	query := search.ParseQuery(req.SearchText)
	return !(query.Mode == search.ModeDefault && query.IsEmpty())
}

// Handle runs req against clipboard without any I/O.
// clipboard may be nil when NeedsClipboard(req) is false.
func Handle(cfg config.Config, clipboard *models.Clipboard, req Request) (Response, error) {
	if err := req.Validate(); err != nil {
		return Response{}, err
	}

	if req.Kind == KindSearch {
		query := search.ParseQuery(req.SearchText)
		if clipboard == nil {
			clipboard = models.NewClipboard()
		}
		return Response{Results: SearchResults(cfg, query, clipboard)}, nil
	}

	command, err := ParseCommand(req.Command)
	if err != nil {
		return Response{}, err
	}
	outcome, err := Apply(clipboard, command, req.Args, req.Form)
	if err != nil {
		return Response{}, err
	}
	return Response{Outcome: &outcome}, nil
}

// Apply runs one command on a copy of clipboard.
// Validation happens before anything is touched, so a failed command never
// yields a modified snapshot.
func Apply(clipboard *models.Clipboard, command Command, args []string, form Form) (Outcome, error) {
	if clipboard == nil {
		clipboard = models.NewClipboard()
	}
	kind, op := command.target()
	next := clipboard.Clone()
	outcome := Outcome{Command: command, Clipboard: next}

	switch op {
	case opAdd:
		name, content, err := readForm(kind, form)
		if err != nil {
			return Outcome{}, err
		}
		outcome.ClipID = addClip(next, kind, name, content)
		outcome.Changed = true

	case opEdit:
		name, content, err := readForm(kind, form)
		if err != nil {
			return Outcome{}, err
		}
		id, err := parseID(args)
		if err != nil {
			return Outcome{}, err
		}
		outcome.ClipID = id
		outcome.Changed = editClip(next, kind, id, name, content)

	case opDelete:
		id, err := parseID(args)
		if err != nil {
			return Outcome{}, err
		}
		outcome.ClipID = id
		outcome.Changed = deleteClip(next, kind, id)

	case opCopy:
		id, err := parseID(args)
		if err != nil {
			return Outcome{}, err
		}
		clip, ok := next.FindImage(id)
		if !ok {
			return Outcome{}, fmt.Errorf("%w: image clip %d", ErrLookup, id)
		}
		outcome.ClipID = id
		outcome.CopyPath = clip.Path
	}

	return outcome, nil
}

func addClip(clipboard *models.Clipboard, kind models.ClipKind, name, content string) int {
	if kind == models.KindImage {
		return clipboard.AddImage(name, content).ID
	}
	return clipboard.AddText(name, content).ID
}

func editClip(clipboard *models.Clipboard, kind models.ClipKind, id int, name, content string) bool {
	if kind == models.KindImage {
		return clipboard.EditImage(id, name, content)
	}
	return clipboard.EditText(id, name, content)
}

func deleteClip(clipboard *models.Clipboard, kind models.ClipKind, id int) bool {
	if kind == models.KindImage {
		return clipboard.DeleteImage(id)
	}
	return clipboard.DeleteText(id)
}

// readForm returns the name and content fields for kind, both required to
// be non-blank. Values are kept exactly as submitted.
func readForm(kind models.ClipKind, form Form) (string, string, error) {
	name := form[fieldName]
	if strings.TrimSpace(name) == "" {
		return "", "", &ValidationError{Field: fieldName}
	}
	field := contentField(kind)
	content := form[field]
	if strings.TrimSpace(content) == "" {
		return "", "", &ValidationError{Field: field}
	}
	return name, content, nil
}

// parseID reads the clip id from the first positional argument
func parseID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: missing clip id", ErrMalformedArgument)
	}
	id, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: clip id %q: %v", ErrMalformedArgument, args[0], err)
	}
	if id < 0 {
		return 0, fmt.Errorf("%w: clip id %d is negative", ErrMalformedArgument, id)
	}
	return id, nil
}

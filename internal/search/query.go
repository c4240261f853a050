package search

import (
	"strings"
	"unicode"
)

// Mode is the interaction context selected by a keyword prefix
type Mode int

const (
	ModeDefault Mode = iota
	ModeEdit
	ModeDelete
)

func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeEdit:
		return "edit"
	case ModeDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// keywords are matched case-sensitively
var keywords = map[string]Mode{
	"edit":   ModeEdit,
	"e":      ModeEdit,
	"delete": ModeDelete,
	"d":      ModeDelete,
}

// Query is raw search input split into a mode and the text to match on
type Query struct {
	Mode       Mode
	SearchText string
}

// IsEmpty reports whether the query has nothing to filter on
func (q Query) IsEmpty() bool {
	return strings.TrimSpace(q.SearchText) == ""
}

// ParseQuery splits a leading mode keyword off raw.
// The keyword only counts when whitespace follows it; without a recognized
// keyword the entire input is the search text.
func ParseQuery(raw string) Query {
	trimmed := strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := strings.IndexFunc(trimmed, unicode.IsSpace)
	if end < 0 {
		return Query{Mode: ModeDefault, SearchText: raw}
	}

	mode, ok := keywords[trimmed[:end]]
	if !ok {
		return Query{Mode: ModeDefault, SearchText: raw}
	}

	return Query{
		Mode:       mode,
		SearchText: strings.TrimLeftFunc(trimmed[end:], unicode.IsSpace),
	}
}

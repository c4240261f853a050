package search

import (
	"strings"
	"unicode"
)

// Matches reports whether candidate should be listed for search.
// Matching is case-insensitive and tolerant of small typos: an empty search
// matches everything, substrings always match, and beyond that the search may
// match as an in-order abbreviation or within a small edit distance.
func Matches(candidate, search string) bool {
	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return true
	}

	text := []rune(strings.ToLower(candidate))
	pattern := []rune(query)

	if strings.Contains(string(text), query) {
		return true
	}
	if fuzzyContains(text, pattern) {
		return true
	}
	if approxContains(text, pattern, typoBudget(pattern)) {
		return true
	}

	// Multi-word queries match when every word does, in any order
	tokens := tokenize(query)
	if len(tokens) < 2 {
		return false
	}
	for _, token := range tokens {
		if !tokenMatches(text, []rune(token)) {
			return false
		}
	}
	return true
}

// tokenMatches checks a single query word against the whole candidate
func tokenMatches(text, token []rune) bool {
	if strings.Contains(string(text), string(token)) {
		return true
	}
	return fuzzyContains(text, token) || approxContains(text, token, typoBudget(token))
}

// typoBudget is the number of edits tolerated for a pattern.
// Short patterns must match exactly, otherwise one edit per four runes.
func typoBudget(pattern []rune) int {
	if len(pattern) < 4 {
		return 0
	}
	return len(pattern) / 4
}

// tokenize splits a query into searchable tokens
func tokenize(s string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
		} else if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// fuzzyContains checks if text contains characters of pattern in order
// with limited gaps (allows for typos and abbreviations)
func fuzzyContains(text, pattern []rune) bool {
	if len(pattern) == 0 {
		return true
	}
	if len(text) == 0 {
		return false
	}

	patternIdx := 0
	gaps := 0
	maxGaps := len(pattern)

	for i := 0; i < len(text) && patternIdx < len(pattern); i++ {
		if text[i] == pattern[patternIdx] {
			patternIdx++
			gaps = 0
		} else if patternIdx > 0 {
			gaps++
			if gaps > maxGaps {
				return false
			}
		}
	}

	return patternIdx == len(pattern)
}

// approxContains reports whether some substring of text is within maxEdits
// of pattern, counting insertions, deletions, substitutions and adjacent
// transpositions.
func approxContains(text, pattern []rune, maxEdits int) bool {
	m, n := len(pattern), len(text)
	if m == 0 {
		return true
	}
	if m-maxEdits > n {
		return false
	}

	// d[i][j]: cost of matching pattern[:i] against a substring ending at text[j-1].
	// Row 0 is all zeros so a match may start anywhere.
	d := make([][]int, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
		d[i][0] = i
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 1
			if pattern[i-1] == text[j-1] {
				cost = 0
			}
			best := min(
				d[i-1][j]+1,
				d[i][j-1]+1,
				d[i-1][j-1]+cost,
			)
			if i > 1 && j > 1 && pattern[i-1] == text[j-2] && pattern[i-2] == text[j-1] {
				best = min(best, d[i-2][j-2]+1)
			}
			d[i][j] = best
		}
	}

	for j := 0; j <= n; j++ {
		if d[m][j] <= maxEdits {
			return true
		}
	}
	return false
}

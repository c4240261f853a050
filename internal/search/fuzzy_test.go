package search

import "testing"

func TestMatches(t *testing.T) {
	testCases := []struct {
		name      string
		candidate string
		search    string
		want      bool
	}{
		{name: "empty search", candidate: "Robot Notes", search: "", want: true},
		{name: "blank search", candidate: "Robot Notes", search: "   ", want: true},
		{name: "empty candidate with empty search", candidate: "", search: "", want: true},
		{name: "exact case-insensitive", candidate: "Robot Notes", search: "robot notes", want: true},
		{name: "prefix", candidate: "Robot Notes", search: "robot", want: true},
		{name: "upper case search", candidate: "Robot Notes", search: "NOTES", want: true},
		{name: "abbreviation", candidate: "Robot data", search: "robdata", want: true},
		{name: "missing letter", candidate: "Snippet A", search: "snipet", want: true},
		{name: "substituted letter", candidate: "Snippet A", search: "snoppet", want: true},
		{name: "transposed letters", candidate: "Meeting agenda", search: "agneda", want: true},
		{name: "words out of order", candidate: "Robot Notes", search: "notes robot", want: true},
		{name: "unrelated", candidate: "Robot Notes", search: "zzz", want: false},
		{name: "short typo is not tolerated", candidate: "cat", search: "cbt", want: false},
		{name: "one word unrelated", candidate: "Robot Notes", search: "robot zebra", want: false},
		{name: "empty candidate", candidate: "", search: "a", want: false},
		{name: "unicode", candidate: "Ünïcode Notes", search: "ünï", want: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := Matches(testCase.candidate, testCase.search); got != testCase.want {
				t.Fatalf("Matches(%q, %q) = %v, want %v", testCase.candidate, testCase.search, got, testCase.want)
			}
		})
	}
}

func TestMatchesSubstringsAreMonotonic(t *testing.T) {
	candidate := "Quarterly Report Draft"
	lower := "quarterly report draft"
	for start := 0; start < len(lower); start++ {
		for end := start + 1; end <= len(lower); end++ {
			search := lower[start:end]
			if !Matches(candidate, search) {
				t.Fatalf("substring %q of %q did not match", search, candidate)
			}
		}
	}
}

func TestMatchesIsDeterministic(t *testing.T) {
	for i := 0; i < 50; i++ {
		if !Matches("Robot data", "robdata") {
			t.Fatalf("iteration %d: expected match", i)
		}
		if Matches("Robot Notes", "zzz") {
			t.Fatalf("iteration %d: unexpected match", i)
		}
	}
}

func TestApproxContains(t *testing.T) {
	testCases := []struct {
		text     string
		pattern  string
		maxEdits int
		want     bool
	}{
		{text: "hello world", pattern: "world", maxEdits: 0, want: true},
		{text: "hello world", pattern: "wrold", maxEdits: 1, want: true},
		{text: "hello world", pattern: "wrold", maxEdits: 0, want: false},
		{text: "hello world", pattern: "wxrld", maxEdits: 1, want: true},
		{text: "abc", pattern: "abcdefgh", maxEdits: 1, want: false},
	}
	for _, testCase := range testCases {
		got := approxContains([]rune(testCase.text), []rune(testCase.pattern), testCase.maxEdits)
		if got != testCase.want {
			t.Fatalf("approxContains(%q, %q, %d) = %v, want %v",
				testCase.text, testCase.pattern, testCase.maxEdits, got, testCase.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	tokens := tokenize("robot, notes-2024")
	want := []string{"robot", "notes", "2024"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %v, got %v", want, tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, tokens)
		}
	}
}

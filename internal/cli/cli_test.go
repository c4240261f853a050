package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/AbdouB/clipper/internal/dispatch"
	"github.com/AbdouB/clipper/internal/models"
)

func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	prevIn, prevOut, prevErr := stdin, stdout, stderr
	stdin = strings.NewReader(input)
	stdout = &out
	stderr = &errOut
	t.Cleanup(func() {
		stdin, stdout, stderr = prevIn, prevOut, prevErr
	})

	rootCmd.SetArgs(args)
	err := Execute()
	return out.String(), errOut.String(), err
}

func decodeResults(t *testing.T, out string) []models.Result {
	t.Helper()
	var results []models.Result
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("output is not a result list: %v\n%s", err, out)
	}
	return results
}

func TestCLIRoundTrip(t *testing.T) {
	t.Setenv("CLIPPER_STORAGE_DIR", t.TempDir())
	t.Setenv("CLIPPER_ICONS_DIR", "/icons")

	_, _, err := execute(t, `{"kind":"command","command":"add-text","form":{"name":"Snippet A","text":"hello"}}`, "request")
	if err != nil {
		t.Fatalf("add-text request failed: %v", err)
	}

	out, _, err := execute(t, "", "search", "")
	if err != nil {
		t.Fatalf("empty search failed: %v", err)
	}
	results := decodeResults(t, out)
	if len(results) != 2 || results[0].Icon != "/icons/plus.svg" {
		t.Fatalf("expected the two add entries, got %+v", results)
	}

	out, _, err = execute(t, "", "search", "snip")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	results = decodeResults(t, out)
	if len(results) != 1 || results[0].Title != "Snippet A" || results[0].Action.Text != "hello" {
		t.Fatalf("unexpected results: %+v", results)
	}

	_, errOut, err := execute(t, `{"kind":"command","command":"add-image","form":{"name":" ","path":"/a.png"}}`, "request")
	if !errors.Is(err, dispatch.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var report struct {
		Status string              `json:"status"`
		Notify models.Notification `json:"notify"`
	}
	dec := json.NewDecoder(strings.NewReader(errOut))
	if err := dec.Decode(&report); err != nil {
		t.Fatalf("error report is not JSON: %v\n%s", err, errOut)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		t.Fatalf("expected stderr to hold only the error report, got:\n%s", errOut)
	}
	if report.Status != "error" || report.Notify.Message != "Name is required" {
		t.Fatalf("unexpected error report: %+v", report)
	}

	if _, _, err := execute(t, "", "run", "delete-text-clip", "0"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	out, _, err = execute(t, `{"kind":"search","search_text":"e snip"}`, "request")
	if err != nil {
		t.Fatalf("edit search failed: %v", err)
	}
	if results := decodeResults(t, out); len(results) != 0 {
		t.Fatalf("expected no clips after delete, got %+v", results)
	}
}

func TestCLIMalformedInput(t *testing.T) {
	t.Setenv("CLIPPER_STORAGE_DIR", t.TempDir())

	_, _, err := execute(t, "{not json", "request")
	if !errors.Is(err, dispatch.ErrMalformedArgument) {
		t.Fatalf("expected ErrMalformedArgument, got %v", err)
	}

	_, _, err = execute(t, "", "run", "delete-image-clip", "first")
	if !errors.Is(err, dispatch.ErrMalformedArgument) {
		t.Fatalf("expected ErrMalformedArgument, got %v", err)
	}

	_, errOut, err := execute(t, "", "run", "frobnicate")
	if !errors.Is(err, dispatch.ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
	if strings.Contains(errOut, "notify") {
		t.Fatalf("fatal errors must not request a notification: %s", errOut)
	}
	if !strings.Contains(errOut, `"msg":"request failed"`) {
		t.Fatalf("expected the failure to be logged to stderr, got: %s", errOut)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "clipper version ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

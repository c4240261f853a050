package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	testCases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" INFO ":  zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"":        zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.WarnLevel,
	}
	for input, want := range testCases {
		if got := ParseLevel(input); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger("debug", &out)
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level to be enabled")
	}

	logger.Debug("hello", zap.Int("clip_id", 3))
	var entry map[string]any
	if err := json.Unmarshal(out.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not one JSON record: %v\n%s", err, out.String())
	}
	if entry["msg"] != "hello" || entry["level"] != "debug" || entry["clip_id"] != float64(3) {
		t.Fatalf("unexpected log record %v", entry)
	}
}

func TestNewLoggerFiltersBelowLevel(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger("warn", &out)
	logger.Info("quiet")
	logger.Debug("quieter")
	if out.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", out.String())
	}
}

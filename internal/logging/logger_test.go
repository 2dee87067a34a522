package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(buf *bytes.Buffer, level string) *slog.Logger {
	levelVar := new(slog.LevelVar)
	levelVar.Set(parseLevel(level))
	return slog.New(newConsoleHandler(buf, levelVar))
}

func TestConsoleHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, "info")

	logger.Info("catalog built", String("root", "/subs"), Int("movies", 3))
	line := buf.String()

	if !strings.Contains(line, "INFO") {
		t.Fatalf("missing level label: %q", line)
	}
	if !strings.Contains(line, "catalog built") {
		t.Fatalf("missing message: %q", line)
	}
	if !strings.Contains(line, "root=/subs") || !strings.Contains(line, "movies=3") {
		t.Fatalf("missing attributes: %q", line)
	}
}

func TestConsoleHandlerComponentPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger := NewComponentLogger(newTestLogger(&buf, "info"), "catalog")

	logger.Info("built")
	line := buf.String()
	if !strings.Contains(line, "catalog: built") {
		t.Fatalf("component not folded into prefix: %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component leaked as attribute: %q", line)
	}
}

func TestConsoleHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record not filtered: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestErrorAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, "info")

	logger.Error("probe failed", Error(errors.New("exit status 1")))
	if !strings.Contains(buf.String(), "error=") {
		t.Fatalf("error attribute missing: %q", buf.String())
	}

	buf.Reset()
	logger.Info("fine", Error(nil))
	if !strings.Contains(buf.String(), "error=<nil>") {
		t.Fatalf("nil error formatting: %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	// Must not panic or write anywhere.
	logger.Info("discarded", String("key", "value"))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Fatalf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

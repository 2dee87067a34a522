package services_test

import (
	"errors"
	"strings"
	"testing"

	"submix/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExternalTool, "mux", "ffmpeg", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"mux", "ffmpeg", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapWithoutBaseError(t *testing.T) {
	err := services.Wrap(services.ErrValidation, "classify", "", "codec_type missing", nil)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "codec_type missing") {
		t.Fatalf("expected message in %q", err.Error())
	}
}

func TestHaltsRun(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"interrupted", services.Wrap(services.ErrInterrupted, "mux", "ffmpeg", "cancelled", nil), true},
		{"external tool", services.Wrap(services.ErrExternalTool, "probe", "ffprobe", "exit 1", nil), false},
		{"validation", services.Wrap(services.ErrValidation, "classify", "", "bad stream", nil), false},
		{"unresolved", services.Wrap(services.ErrUnresolvedSubtitle, "plan", "", "fr", nil), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := services.HaltsRun(tt.err); got != tt.want {
				t.Fatalf("HaltsRun(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

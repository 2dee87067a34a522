package preflight

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"submix/internal/config"
)

func TestCheckDirectoryAccessOK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccessNotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccessNotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckWritableDirectoryOK(t *testing.T) {
	result := CheckWritableDirectory("test", t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestRunAllNilConfig(t *testing.T) {
	if results := RunAll(context.Background(), nil); results != nil {
		t.Fatal("expected nil results for nil config")
	}
}

func TestRunAllSharedSubtitleDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.MovieDir = t.TempDir()
	cfg.Paths.SubtitleDir = cfg.Paths.MovieDir
	cfg.Tools.FFprobe = "clearly-not-present-binary"
	cfg.Tools.FFmpeg = "clearly-not-present-binary"

	results := RunAll(context.Background(), &cfg)
	// One directory check plus the two tool checks.
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].Passed {
		t.Fatalf("movie directory check failed: %s", results[0].Detail)
	}
	if results[1].Passed || results[2].Passed {
		t.Fatal("expected tool checks to fail for absent binaries")
	}
	if Passed(results) {
		t.Fatal("expected Passed to report failure")
	}
}

func TestRunAllDistinctSubtitleDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.MovieDir = t.TempDir()
	cfg.Paths.SubtitleDir = t.TempDir()
	cfg.Tools.FFprobe = "clearly-not-present-binary"
	cfg.Tools.FFmpeg = "clearly-not-present-binary"

	results := RunAll(context.Background(), &cfg)
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if !results[1].Passed {
		t.Fatalf("subtitle directory check failed: %s", results[1].Detail)
	}
}

func TestCheckToolsAvailable(t *testing.T) {
	binDir := t.TempDir()
	for _, name := range []string{"ffprobe", "ffmpeg"} {
		stub := filepath.Join(binDir, name)
		if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
			t.Fatalf("write stub: %v", err)
		}
	}

	cfg := config.Default()
	cfg.Tools.FFprobe = filepath.Join(binDir, "ffprobe")
	cfg.Tools.FFmpeg = filepath.Join(binDir, "ffmpeg")

	for _, status := range CheckTools(context.Background(), &cfg) {
		if !status.Available {
			t.Errorf("%s unavailable: %s", status.Name, status.Detail)
		}
	}
}

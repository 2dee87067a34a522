package media

import (
	"errors"
	"path/filepath"
	"testing"

	"submix/internal/language"
	"submix/internal/services"
)

func TestNewMovie(t *testing.T) {
	streams := []Stream{
		{Index: 0, CodecName: "h264", Type: CodecVideo},
		{Index: 1, CodecName: "aac", Type: CodecAudio, Language: language.MustResolve("en")},
		{Index: 2, CodecName: "subrip", Type: CodecSubtitle, Language: language.MustResolve("en")},
		{Index: 3, CodecName: "hdmv_pgs_subtitle", Type: CodecSubtitle},
	}
	movie, err := NewMovie("/library/Alpha (2019)/Alpha.2019.mkv", streams)
	if err != nil {
		t.Fatal(err)
	}
	if movie.Name != "Alpha.2019" {
		t.Fatalf("name = %q", movie.Name)
	}
	if movie.Ext != "mkv" {
		t.Fatalf("ext = %q", movie.Ext)
	}
	if movie.Dir != "Alpha (2019)" {
		t.Fatalf("dir = %q", movie.Dir)
	}

	subs := movie.EmbeddedSubtitles()
	if len(subs) != 1 {
		t.Fatalf("embedded subtitles = %d, want 1 (pgs excluded)", len(subs))
	}
	if subs[0].Index != 2 {
		t.Fatalf("embedded subtitle index = %d", subs[0].Index)
	}
}

func TestNewMovieRejectsBareFilename(t *testing.T) {
	for _, path := range []string{"/library/noext", "/library/.mkv"} {
		t.Run(path, func(t *testing.T) {
			_, err := NewMovie(path, nil)
			if !errors.Is(err, services.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	movie := Movie{Name: "Alpha", Dir: "Alpha (2019)"}
	got := movie.OutputPath("/out")
	want := filepath.Join("/out", "Alpha (2019)", "Alpha subtitles.mkv")
	if got != want {
		t.Fatalf("OutputPath = %q, want %q", got, want)
	}
}

package media

import (
	"fmt"
	"path/filepath"
	"strings"

	"submix/internal/services"
)

// Movie aggregates a source file with its classified streams. Immutable after
// construction; built once per discovered media file.
type Movie struct {
	Path    string
	Name    string // filename without extension
	Ext     string // extension without the leading dot
	Dir     string // base name of the parent directory
	Streams []Stream
}

// NewMovie derives the display name and extension from path and attaches the
// classified streams. The filename must carry an extension.
func NewMovie(path string, streams []Stream) (Movie, error) {
	filename := filepath.Base(path)
	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filename, ext)
	if name == "" || ext == "" {
		return Movie{}, services.Wrap(services.ErrValidation, "movie", "", fmt.Sprintf("cannot split %q into name and extension", filename), nil)
	}
	return Movie{
		Path:    path,
		Name:    name,
		Ext:     strings.TrimPrefix(ext, "."),
		Dir:     filepath.Base(filepath.Dir(path)),
		Streams: streams,
	}, nil
}

// EmbeddedSubtitles returns the streams that are valid embedded subtitles, in
// source order.
func (m Movie) EmbeddedSubtitles() []Stream {
	var subs []Stream
	for _, s := range m.Streams {
		if s.IsValidSubtitle() {
			subs = append(subs, s)
		}
	}
	return subs
}

// OutputPath is where the muxed container for this movie is written:
// <outputDir>/<parent-dir>/<name> subtitles.mkv, mirroring the library layout
// one level deep.
func (m Movie) OutputPath(outputDir string) string {
	return filepath.Join(outputDir, m.Dir, m.Name+" subtitles.mkv")
}

package media

import (
	"fmt"
	"strings"

	"submix/internal/language"
	"submix/internal/media/ffprobe"
	"submix/internal/services"
)

// CodecType is the category of an elementary stream.
type CodecType string

const (
	CodecAudio    CodecType = "audio"
	CodecVideo    CodecType = "video"
	CodecSubtitle CodecType = "subtitle"
)

// subtitleCodecs are the embedded subtitle formats that can be carried over
// into the output container.
var subtitleCodecs = map[string]struct{}{
	"ass":          {},
	"dvd_subtitle": {},
	"ssa":          {},
	"subrip":       {},
}

// Stream is one classified elementary stream inside a container.
type Stream struct {
	Index       int               // position within the source container, preserved verbatim in mappings
	CodecName   string            // ffprobe codec identifier
	Type        CodecType         // audio, video, or subtitle
	Language    language.Language // zero when the container carries no usable tag
	AttachedPic bool              // cover art reported as a video stream
}

// IsValidSubtitle reports whether the stream is a subtitle in a format the
// plan builder will carry into the output.
func (s Stream) IsValidSubtitle() bool {
	if s.Type != CodecSubtitle {
		return false
	}
	_, ok := subtitleCodecs[s.CodecName]
	return ok
}

// IsMappable reports whether the stream can appear in an output mapping at all.
func (s Stream) IsMappable() bool {
	return s.Type == CodecAudio || s.Type == CodecVideo || s.IsValidSubtitle()
}

// Classify converts a raw probe record into a typed stream descriptor.
// A record missing its index, codec name, or codec type, or carrying an
// unknown codec type, fails with a validation error; a malformed stream
// invalidates the whole probe result.
func Classify(raw ffprobe.Stream) (Stream, error) {
	if raw.Index == nil {
		return Stream{}, services.Wrap(services.ErrValidation, "classify", "", "stream record is missing index", nil)
	}
	if *raw.Index < 0 {
		return Stream{}, services.Wrap(services.ErrValidation, "classify", "", fmt.Sprintf("stream index %d is negative", *raw.Index), nil)
	}
	codecName := strings.TrimSpace(raw.CodecName)
	if codecName == "" {
		return Stream{}, services.Wrap(services.ErrValidation, "classify", "", fmt.Sprintf("stream %d is missing codec_name", *raw.Index), nil)
	}
	codecType := CodecType(strings.ToLower(strings.TrimSpace(raw.CodecType)))
	switch codecType {
	case CodecAudio, CodecVideo, CodecSubtitle:
	case "":
		return Stream{}, services.Wrap(services.ErrValidation, "classify", "", fmt.Sprintf("stream %d is missing codec_type", *raw.Index), nil)
	default:
		return Stream{}, services.Wrap(services.ErrValidation, "classify", "", fmt.Sprintf("stream %d has unknown codec_type %q", *raw.Index, raw.CodecType), nil)
	}

	return Stream{
		Index:       *raw.Index,
		CodecName:   codecName,
		Type:        codecType,
		Language:    language.Resolve(raw.Language()),
		AttachedPic: raw.AttachedPic(),
	}, nil
}

// ClassifyAll classifies every stream of a probe result, failing on the first
// malformed record.
func ClassifyAll(raws []ffprobe.Stream) ([]Stream, error) {
	streams := make([]Stream, 0, len(raws))
	for _, raw := range raws {
		stream, err := Classify(raw)
		if err != nil {
			return nil, err
		}
		streams = append(streams, stream)
	}
	return streams, nil
}

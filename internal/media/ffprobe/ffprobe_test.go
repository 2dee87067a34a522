package ffprobe

import (
	"encoding/json"
	"testing"
)

const sampleReport = `{
  "streams": [
    {"index": 0, "codec_name": "h264", "codec_type": "video", "disposition": {"default": 1, "attached_pic": 0}},
    {"index": 1, "codec_name": "aac", "codec_type": "audio", "tags": {"language": "eng"}},
    {"index": 2, "codec_name": "subrip", "codec_type": "subtitle", "tags": {"language": "jpn"}},
    {"index": 3, "codec_name": "mjpeg", "codec_type": "video", "disposition": {"attached_pic": 1}}
  ],
  "format": {"filename": "movie.mkv", "nb_streams": 4, "duration": "5400.25", "size": "734003200", "format_name": "matroska,webm"}
}`

func decodeSample(t *testing.T) Result {
	t.Helper()
	var result Result
	if err := json.Unmarshal([]byte(sampleReport), &result); err != nil {
		t.Fatalf("decode sample: %v", err)
	}
	return result
}

func TestDecodeStreams(t *testing.T) {
	result := decodeSample(t)
	if len(result.Streams) != 4 {
		t.Fatalf("expected 4 streams, got %d", len(result.Streams))
	}
	first := result.Streams[0]
	if first.Index == nil || *first.Index != 0 {
		t.Fatalf("unexpected index for first stream: %v", first.Index)
	}
	if first.CodecName != "h264" || first.CodecType != "video" {
		t.Fatalf("unexpected codec info: %s/%s", first.CodecName, first.CodecType)
	}
	if first.AttachedPic() {
		t.Fatal("playable video flagged as attached picture")
	}
	if !result.Streams[3].AttachedPic() {
		t.Fatal("cover art not flagged as attached picture")
	}
}

func TestStreamLanguage(t *testing.T) {
	result := decodeSample(t)
	if lang := result.Streams[1].Language(); lang != "eng" {
		t.Fatalf("audio language = %q, want eng", lang)
	}
	if lang := result.Streams[0].Language(); lang != "" {
		t.Fatalf("untagged stream language = %q, want empty", lang)
	}
}

func TestMissingIndexDecodesToNil(t *testing.T) {
	var s Stream
	if err := json.Unmarshal([]byte(`{"codec_name": "aac", "codec_type": "audio"}`), &s); err != nil {
		t.Fatal(err)
	}
	if s.Index != nil {
		t.Fatalf("expected nil index, got %d", *s.Index)
	}
}

func TestFormatHelpers(t *testing.T) {
	result := decodeSample(t)
	if got := result.DurationSeconds(); got != 5400.25 {
		t.Fatalf("DurationSeconds = %v", got)
	}
	if got := result.SizeBytes(); got != 734003200 {
		t.Fatalf("SizeBytes = %v", got)
	}

	empty := Result{}
	if empty.DurationSeconds() != 0 || empty.SizeBytes() != 0 {
		t.Fatal("empty format should report zero duration and size")
	}

	bad := Result{Format: Format{Duration: "soon", Size: "big"}}
	if bad.DurationSeconds() != 0 || bad.SizeBytes() != 0 {
		t.Fatal("unparseable format values should report zero")
	}
}

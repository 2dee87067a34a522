package media

import (
	"errors"
	"testing"

	"submix/internal/language"
	"submix/internal/media/ffprobe"
	"submix/internal/services"
)

func intp(v int) *int { return &v }

func TestClassify(t *testing.T) {
	raw := ffprobe.Stream{
		Index:       intp(2),
		CodecName:   "subrip",
		CodecType:   "subtitle",
		Tags:        map[string]string{"language": "jpn"},
		Disposition: map[string]int{"default": 1},
	}
	stream, err := Classify(raw)
	if err != nil {
		t.Fatal(err)
	}
	if stream.Index != 2 {
		t.Fatalf("index = %d", stream.Index)
	}
	if stream.Type != CodecSubtitle {
		t.Fatalf("type = %s", stream.Type)
	}
	if stream.Language != language.MustResolve("ja") {
		t.Fatalf("language = %v", stream.Language)
	}
	if stream.AttachedPic {
		t.Fatal("unexpected attached picture flag")
	}
}

func TestClassifyAttachedPic(t *testing.T) {
	raw := ffprobe.Stream{
		Index:       intp(3),
		CodecName:   "mjpeg",
		CodecType:   "video",
		Disposition: map[string]int{"attached_pic": 1},
	}
	stream, err := Classify(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !stream.AttachedPic {
		t.Fatal("attached picture flag not set")
	}
}

func TestClassifyUnrecognizedLanguageIsAbsent(t *testing.T) {
	raw := ffprobe.Stream{
		Index:     intp(1),
		CodecName: "aac",
		CodecType: "audio",
		Tags:      map[string]string{"language": "qqq"},
	}
	stream, err := Classify(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !stream.Language.IsZero() {
		t.Fatalf("expected absent language, got %v", stream.Language)
	}
}

func TestClassifyRejectsMalformedRecords(t *testing.T) {
	tests := []struct {
		name string
		raw  ffprobe.Stream
	}{
		{"missing index", ffprobe.Stream{CodecName: "h264", CodecType: "video"}},
		{"negative index", ffprobe.Stream{Index: intp(-1), CodecName: "h264", CodecType: "video"}},
		{"missing codec_name", ffprobe.Stream{Index: intp(0), CodecType: "video"}},
		{"missing codec_type", ffprobe.Stream{Index: intp(0), CodecName: "h264"}},
		{"unknown codec_type", ffprobe.Stream{Index: intp(0), CodecName: "bin", CodecType: "data"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.raw)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, services.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestClassifyAllFailsOnFirstMalformed(t *testing.T) {
	raws := []ffprobe.Stream{
		{Index: intp(0), CodecName: "h264", CodecType: "video"},
		{Index: intp(1), CodecName: "aac", CodecType: "audio"},
		{Index: intp(2), CodecName: "bin", CodecType: "attachment"},
	}
	if _, err := ClassifyAll(raws); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSubtitlePredicates(t *testing.T) {
	tests := []struct {
		name     string
		stream   Stream
		valid    bool
		mappable bool
	}{
		{"subrip", Stream{Type: CodecSubtitle, CodecName: "subrip"}, true, true},
		{"ass", Stream{Type: CodecSubtitle, CodecName: "ass"}, true, true},
		{"ssa", Stream{Type: CodecSubtitle, CodecName: "ssa"}, true, true},
		{"dvd bitmap", Stream{Type: CodecSubtitle, CodecName: "dvd_subtitle"}, true, true},
		{"pgs", Stream{Type: CodecSubtitle, CodecName: "hdmv_pgs_subtitle"}, false, false},
		{"audio", Stream{Type: CodecAudio, CodecName: "aac"}, false, true},
		{"video", Stream{Type: CodecVideo, CodecName: "h264"}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stream.IsValidSubtitle(); got != tt.valid {
				t.Fatalf("IsValidSubtitle = %v, want %v", got, tt.valid)
			}
			if got := tt.stream.IsMappable(); got != tt.mappable {
				t.Fatalf("IsMappable = %v, want %v", got, tt.mappable)
			}
		})
	}
}

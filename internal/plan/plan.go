package plan

import (
	"fmt"
	"strings"

	"submix/internal/catalog"
	"submix/internal/language"
	"submix/internal/media"
	"submix/internal/services"
)

// externalSubtitleCodec is the codec external .srt files are muxed as.
const externalSubtitleCodec = "subrip"

// Directive is one output stream mapping instruction for the transcoder.
type Directive struct {
	Input       int               // input file ordinal; 0 is the primary container
	SourceIndex int               // stream index within the input; -1 selects by category on auxiliary inputs
	Slot        int               // output slot within Category, contiguous and zero-based
	Category    media.CodecType   // output stream category
	Codec       string            // output codec; "copy" passes the stream through
	Language    language.Language // attached as stream metadata when set
	Default     bool              // default-disposition flag
	AttachedPic bool              // attached-picture disposition flag
}

// Plan is the ordered directive set for one output container. Directives are
// emitted video, audio, embedded subtitles, external subtitles, attached
// pictures; the transcoder assigns output indices purely positionally, so this
// order is the output layout.
type Plan struct {
	Source         string
	ExternalInputs []string // auxiliary subtitle files, in directive order
	Directives     []Directive
}

// Options carries the caller-supplied policy for plan construction.
type Options struct {
	DefaultLanguage language.Language // receives the default-subtitle disposition
	VideoCodec      string            // output video codec; empty means passthrough
}

// UnresolvedSubtitleError reports missing languages that have no catalog path.
// The caller decides whether to retry with a reduced language set or abort.
type UnresolvedSubtitleError struct {
	Movie     string
	Languages []language.Language
}

func (e *UnresolvedSubtitleError) Error() string {
	names := make([]string, 0, len(e.Languages))
	for _, lang := range e.Languages {
		names = append(names, lang.Name())
	}
	return fmt.Sprintf("unresolved subtitle: no catalog entry for %s: %s", e.Movie, strings.Join(names, ", "))
}

func (e *UnresolvedSubtitleError) Unwrap() error {
	return services.ErrUnresolvedSubtitle
}

// Build produces the ordered directive set that muxes the missing languages
// into a new container for movie. Every missing language must resolve to a
// catalog path; otherwise an UnresolvedSubtitleError naming all unresolved
// languages is returned and no plan is produced.
func Build(movie media.Movie, missing []language.Language, cat *catalog.Catalog, opts Options) (Plan, error) {
	if opts.DefaultLanguage.IsZero() {
		return Plan{}, services.Wrap(services.ErrConfiguration, "plan", "", "default language is required", nil)
	}

	externalPaths := make([]string, 0, len(missing))
	var unresolved []language.Language
	for _, lang := range missing {
		path, ok := cat.Lookup(movie.Name, lang)
		if !ok {
			unresolved = append(unresolved, lang)
			continue
		}
		externalPaths = append(externalPaths, path)
	}
	if len(unresolved) > 0 {
		return Plan{}, &UnresolvedSubtitleError{Movie: movie.Name, Languages: unresolved}
	}

	videoCodec := strings.TrimSpace(opts.VideoCodec)
	if videoCodec == "" {
		videoCodec = "copy"
	}

	var videos, audios, attached []media.Stream
	for _, s := range movie.Streams {
		switch {
		case s.Type == media.CodecVideo && s.AttachedPic:
			attached = append(attached, s)
		case s.Type == media.CodecVideo:
			videos = append(videos, s)
		case s.Type == media.CodecAudio:
			audios = append(audios, s)
		}
	}
	embedded := movie.EmbeddedSubtitles()

	p := Plan{
		Source:         movie.Path,
		ExternalInputs: externalPaths,
	}
	defaultAssigned := false

	for slot, s := range videos {
		p.Directives = append(p.Directives, Directive{
			Input:       0,
			SourceIndex: s.Index,
			Slot:        slot,
			Category:    media.CodecVideo,
			Codec:       videoCodec,
		})
	}

	for slot, s := range audios {
		p.Directives = append(p.Directives, Directive{
			Input:       0,
			SourceIndex: s.Index,
			Slot:        slot,
			Category:    media.CodecAudio,
			Codec:       "copy",
		})
	}

	for slot, s := range embedded {
		lang := language.Effective(s.Language, opts.DefaultLanguage)
		isDefault := !defaultAssigned && lang == opts.DefaultLanguage
		if isDefault {
			defaultAssigned = true
		}
		p.Directives = append(p.Directives, Directive{
			Input:       0,
			SourceIndex: s.Index,
			Slot:        slot,
			Category:    media.CodecSubtitle,
			Codec:       s.CodecName,
			Language:    lang,
			Default:     isDefault,
		})
	}

	for i, lang := range missing {
		isDefault := !defaultAssigned && lang == opts.DefaultLanguage
		if isDefault {
			defaultAssigned = true
		}
		p.Directives = append(p.Directives, Directive{
			Input:       i + 1,
			SourceIndex: -1,
			Slot:        len(embedded) + i,
			Category:    media.CodecSubtitle,
			Codec:       externalSubtitleCodec,
			Language:    lang,
			Default:     isDefault,
		})
	}

	for i, s := range attached {
		p.Directives = append(p.Directives, Directive{
			Input:       0,
			SourceIndex: s.Index,
			Slot:        len(videos) + i,
			Category:    media.CodecVideo,
			Codec:       s.CodecName,
			AttachedPic: true,
		})
	}

	return p, nil
}

// FFmpegArgs renders the plan as the transcoder argument vector. The primary
// container is read from stdin (pipe:0); auxiliary subtitle files are regular
// inputs in directive order.
func (p Plan) FFmpegArgs(outputPath string) []string {
	args := []string{"-i", "pipe:0"}
	for _, input := range p.ExternalInputs {
		args = append(args, "-i", input)
	}

	for _, d := range p.Directives {
		if d.SourceIndex >= 0 {
			args = append(args, "-map", fmt.Sprintf("%d:%d", d.Input, d.SourceIndex))
		} else {
			args = append(args, "-map", fmt.Sprintf("%d:%s", d.Input, streamSpecifier(d.Category)))
		}
		spec := streamSpecifier(d.Category)
		if d.Category == media.CodecSubtitle && !d.Language.IsZero() {
			args = append(args, fmt.Sprintf("-metadata:s:s:%d", d.Slot), "language="+d.Language.Part2B())
		}
		args = append(args, fmt.Sprintf("-c:%s:%d", spec, d.Slot), d.Codec)
		if d.Default {
			args = append(args, fmt.Sprintf("-disposition:%s:%d", spec, d.Slot), "default")
		}
		if d.AttachedPic {
			args = append(args, fmt.Sprintf("-disposition:%s:%d", spec, d.Slot), "attached_pic")
		}
	}

	return append(args, outputPath)
}

func streamSpecifier(category media.CodecType) string {
	switch category {
	case media.CodecVideo:
		return "v"
	case media.CodecAudio:
		return "a"
	default:
		return "s"
	}
}

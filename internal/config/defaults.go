package config

const (
	defaultMovieDir        = "~/media/movies"
	defaultSubtitleDir     = "~/media/subtitles"
	defaultOutputDir       = "~/media/movies-subtitled"
	defaultLogDir          = "~/.local/share/submix/logs"
	defaultLanguage        = "eng"
	defaultCatalogLanguage = "en"
	defaultVideoCodec      = "libx265"
	defaultFFprobeBinary   = "ffprobe"
	defaultFFmpegBinary    = "ffmpeg"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			MovieDir:    defaultMovieDir,
			SubtitleDir: defaultSubtitleDir,
			OutputDir:   defaultOutputDir,
			LogDir:      defaultLogDir,
		},
		Languages: Languages{
			Default:        defaultLanguage,
			CatalogDefault: defaultCatalogLanguage,
		},
		Video: Video{
			Codec: defaultVideoCodec,
		},
		Subtitles: Subtitles{
			SkipUnresolved: true,
		},
		Tools: Tools{
			FFprobe: defaultFFprobeBinary,
			FFmpeg:  defaultFFmpegBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

package config

import "strings"

// normalize trims free-form values, restores defaults for emptied fields, and
// expands every path to an absolute form.
func (c *Config) normalize() error {
	c.Languages.Default = strings.TrimSpace(c.Languages.Default)
	if c.Languages.Default == "" {
		c.Languages.Default = defaultLanguage
	}
	c.Languages.CatalogDefault = strings.TrimSpace(c.Languages.CatalogDefault)
	if c.Languages.CatalogDefault == "" {
		c.Languages.CatalogDefault = defaultCatalogLanguage
	}
	wanted := make([]string, 0, len(c.Languages.Wanted))
	for _, token := range c.Languages.Wanted {
		if trimmed := strings.TrimSpace(token); trimmed != "" {
			wanted = append(wanted, trimmed)
		}
	}
	c.Languages.Wanted = wanted

	c.Video.Codec = strings.TrimSpace(c.Video.Codec)
	if c.Video.Codec == "" {
		c.Video.Codec = "copy"
	}

	c.Tools.FFprobe = strings.TrimSpace(c.Tools.FFprobe)
	if c.Tools.FFprobe == "" {
		c.Tools.FFprobe = defaultFFprobeBinary
	}
	c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg)
	if c.Tools.FFmpeg == "" {
		c.Tools.FFmpeg = defaultFFmpegBinary
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	for _, path := range []*string{&c.Paths.MovieDir, &c.Paths.SubtitleDir, &c.Paths.OutputDir, &c.Paths.LogDir} {
		trimmed := strings.TrimSpace(*path)
		if trimmed == "" {
			*path = ""
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return err
		}
		*path = expanded
	}
	return nil
}

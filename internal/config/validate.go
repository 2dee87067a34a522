package config

import (
	"errors"
	"fmt"

	"submix/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLanguages(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.MovieDir == "" {
		return errors.New("paths.movie_dir must be set")
	}
	if c.Paths.SubtitleDir == "" {
		return errors.New("paths.subtitle_dir must be set")
	}
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Paths.MovieDir == c.Paths.OutputDir {
		return errors.New("paths.output_dir must differ from paths.movie_dir")
	}
	return nil
}

func (c *Config) validateLanguages() error {
	if language.Resolve(c.Languages.Default).IsZero() {
		return fmt.Errorf("languages.default: unrecognized language %q", c.Languages.Default)
	}
	if language.Resolve(c.Languages.CatalogDefault).IsZero() {
		return fmt.Errorf("languages.catalog_default: unrecognized language %q", c.Languages.CatalogDefault)
	}
	for _, token := range c.Languages.Wanted {
		if language.Resolve(token).IsZero() {
			return fmt.Errorf("languages.wanted: unrecognized language %q", token)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

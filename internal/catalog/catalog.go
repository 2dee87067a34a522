package catalog

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"

	"submix/internal/fileutil"
	"submix/internal/language"
	"submix/internal/logging"
)

// subtitlePattern splits a subtitle filename into <name>(.<language-token>)?.srt.
// The language segment is optional and restricted to lowercase letters so
// release-year style segments stay part of the name.
var subtitlePattern = regexp.MustCompile(`^(.+?)(?:\.([a-z]+))?\.(?i:srt)$`)

// ExternalSubtitle is one loose subtitle file discovered on disk. Language is
// zero when the filename carries no recognizable marker; Build substitutes the
// catalog default in that case.
type ExternalSubtitle struct {
	Name     string
	Language language.Language
	Path     string
}

// ParseFilename derives the movie-name key and language from a subtitle path.
// Returns false when the filename cannot be split (callers skip those files).
func ParseFilename(path string) (ExternalSubtitle, bool) {
	match := subtitlePattern.FindStringSubmatch(filepath.Base(path))
	if match == nil {
		return ExternalSubtitle{}, false
	}
	return ExternalSubtitle{
		Name:     match[1],
		Language: language.Resolve(match[2]),
		Path:     path,
	}, true
}

// Entry is one (movie, language, path) record, used for reporting.
type Entry struct {
	Name     string
	Language language.Language
	Path     string
}

// Catalog indexes loose subtitle files by movie name and language. Built once
// per run, read-only afterwards.
type Catalog struct {
	entries     map[string]map[language.Language]string
	defaultLang language.Language
}

// Build discovers every .srt file under root and indexes it. Files without a
// recognizable language marker are indexed under defaultLang; files whose
// names cannot be parsed are skipped with a warning. Duplicate
// (name, language) pairs keep the last file visited in sorted walk order.
func Build(root string, defaultLang language.Language, logger *slog.Logger) (*Catalog, error) {
	if defaultLang.IsZero() {
		return nil, fmt.Errorf("catalog build: default language is required")
	}
	log := logging.NewComponentLogger(logger, "catalog")

	paths, err := fileutil.FindFiles(root, ".srt")
	if err != nil {
		return nil, fmt.Errorf("catalog build: discover subtitles: %w", err)
	}

	cat := &Catalog{
		entries:     make(map[string]map[language.Language]string),
		defaultLang: defaultLang,
	}
	for _, path := range paths {
		sub, ok := ParseFilename(path)
		if !ok {
			log.Warn("skipping unparseable subtitle filename",
				logging.String("path", path),
			)
			continue
		}
		lang := language.Effective(sub.Language, defaultLang)
		byLang := cat.entries[sub.Name]
		if byLang == nil {
			byLang = make(map[language.Language]string)
			cat.entries[sub.Name] = byLang
		}
		if previous, exists := byLang[lang]; exists {
			log.Debug("duplicate subtitle for movie and language, keeping later file",
				logging.String("movie", sub.Name),
				logging.String("language", lang.Name()),
				logging.String("replaced", previous),
				logging.String("kept", path),
			)
		}
		byLang[lang] = path
	}

	log.Info("subtitle catalog built",
		logging.String("root", root),
		logging.Int("movies", len(cat.entries)),
		logging.Int("files", len(paths)),
	)
	return cat, nil
}

// Lookup returns the subtitle path for a movie name and language.
func (c *Catalog) Lookup(name string, lang language.Language) (string, bool) {
	path, ok := c.entries[name][lang]
	return path, ok
}

// Languages returns the catalog languages for a movie, sorted by terminology
// code so gap analysis is deterministic across runs.
func (c *Catalog) Languages(name string) []language.Language {
	byLang := c.entries[name]
	if len(byLang) == 0 {
		return nil
	}
	langs := make([]language.Language, 0, len(byLang))
	for lang := range byLang {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i].Part2T() < langs[j].Part2T() })
	return langs
}

// Names returns every movie-name key, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of (name, language) records.
func (c *Catalog) Len() int {
	total := 0
	for _, byLang := range c.entries {
		total += len(byLang)
	}
	return total
}

// Entries returns every record sorted by name then language, for reporting.
func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, 0, c.Len())
	for _, name := range c.Names() {
		for _, lang := range c.Languages(name) {
			entries = append(entries, Entry{Name: name, Language: lang, Path: c.entries[name][lang]})
		}
	}
	return entries
}

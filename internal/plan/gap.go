package plan

import (
	"submix/internal/catalog"
	"submix/internal/language"
	"submix/internal/media"
)

// MissingLanguages computes which subtitle languages the movie still lacks.
//
// Existing languages are the effective languages of the movie's embedded
// subtitles (untagged streams count as defaultLang). Candidates are the wanted
// list when provided; otherwise the catalog's languages for this movie, which
// are already sorted. The result preserves candidate order and is
// deduplicated, so identical inputs always produce the same ordered set.
// A nil wanted slice means "derive from the catalog"; an empty non-nil slice
// means nothing is wanted.
func MissingLanguages(movie media.Movie, cat *catalog.Catalog, wanted []language.Language, defaultLang language.Language) []language.Language {
	existing := make(map[language.Language]struct{})
	for _, s := range movie.EmbeddedSubtitles() {
		existing[language.Effective(s.Language, defaultLang)] = struct{}{}
	}

	candidates := wanted
	if candidates == nil {
		candidates = cat.Languages(movie.Name)
	}

	var missing []language.Language
	seen := make(map[language.Language]struct{}, len(candidates))
	for _, lang := range candidates {
		if lang.IsZero() {
			continue
		}
		if _, ok := existing[lang]; ok {
			continue
		}
		if _, ok := seen[lang]; ok {
			continue
		}
		seen[lang] = struct{}{}
		missing = append(missing, lang)
	}
	return missing
}

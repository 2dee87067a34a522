package main

import (
	"path/filepath"
	"strings"

	"submix/internal/language"
)

func stemOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func languageList(langs []language.Language) string {
	if len(langs) == 0 {
		return "-"
	}
	names := make([]string, 0, len(langs))
	for _, lang := range langs {
		names = append(names, lang.Name())
	}
	return strings.Join(names, ", ")
}

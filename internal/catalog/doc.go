// Package catalog indexes loose .srt subtitle files by movie-name key and
// language, so gap analysis can resolve missing languages to concrete files.
package catalog

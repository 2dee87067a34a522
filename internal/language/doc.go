// Package language normalizes free-form language tokens (2-letter codes,
// 3-letter terminology or bibliographic codes, display names) into canonical
// identities with stable equality.
package language

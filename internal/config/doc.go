// Package config loads, normalizes, and validates the TOML configuration for
// submix. Paths are expanded to absolute form during load; language tokens are
// checked against the canonical language table so later stages can resolve
// them unconditionally.
package config

// Package logging builds the slog loggers used across submix: a line-oriented
// console handler for interactive use, a JSON handler for machine-readable
// output, and small attribute helpers shared by every component.
package logging

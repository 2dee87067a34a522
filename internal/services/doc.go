// Package services defines the shared error taxonomy for the analysis
// pipeline.
//
// Failures are tagged with sentinel markers (validation, external tool,
// unresolved subtitle, interruption) via Wrap so callers can classify them
// with errors.Is without parsing messages. All markers except ErrInterrupted
// describe movie-scoped failures: the run logs them and moves on to the next
// movie. ErrInterrupted stops the whole pass.
package services

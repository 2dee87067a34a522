// Package analyser orchestrates a library pass: it builds the subtitle
// catalog, discovers movie containers, computes each movie's missing
// subtitle languages, and drives the muxer for the ones that need work.
//
// Runs are sequential and movie-scoped: a probe, validation, or transcode
// failure fails that movie and the run moves on. Only interruption (via
// services.ErrInterrupted) halts the whole run, because a cancelled ffmpeg
// leaves nothing worth continuing for. A flock in the log directory keeps
// two runs from racing over the same output files.
package analyser

// Package media turns raw ffprobe records into typed stream descriptors and
// aggregates them into Movie values. Classification is strict: a record
// missing required fields invalidates the whole probe result rather than
// silently defaulting.
package media

// Package ffprobe wraps the ffprobe binary to produce raw stream reports for
// media containers. Records are kept deliberately loose (pointer index,
// free-form tag and disposition maps); package media turns them into typed
// stream descriptors.
package ffprobe

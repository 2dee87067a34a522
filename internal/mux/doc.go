// Package mux executes a subtitle mux plan with ffmpeg, streaming the source
// container over stdin and guaranteeing that a partially written output file
// never survives a failed or interrupted transcode.
package mux

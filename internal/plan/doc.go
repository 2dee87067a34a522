// Package plan computes which subtitle languages a movie is missing and turns
// the answer into the ordered stream-mapping directive set fed to the
// transcoder. Directive order and slot numbering are load-bearing: the
// transcoder assigns output stream indices positionally, so any deviation
// produces a silently wrong container.
package plan

// Package scorex cuts and cleans up MusicXML documents so that short
// musical examples render well.
//
// [Slice] extracts a window of measures, a single part and/or a single
// staff. [Optimize] removes hand placed layout, normalizes notation display
// and applies the presentation [Policy]. [Excerpt] runs parse, slice,
// optimize, encode and render in one go.
//
// All operations work in place on a document produced by
// github.com/signadot/scorex/parse and only accept score-partwise
// documents.
package scorex

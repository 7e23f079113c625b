// Package libdiff computes and prints line diffs of MusicXML documents.
//
// Documents are re-indented before comparison so that only structural
// and textual changes show up.
package libdiff

// Package source reads MusicXML input from files, standard input and
// http(s) URLs, unpacking compressed .mxl containers.
package source

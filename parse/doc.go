// Package parse reads XML text, typically MusicXML, into IR documents.
//
// # Usage
//
//	doc, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//	score := doc.RootElement()
//
//	// drop indentation and comments
//	doc, err = parse.Parse(data, parse.ParseWhitespace(false), parse.ParseComments(false))
//
// Input in encodings other than UTF-8 is decoded according to its byte
// order mark or XML declaration.
//
// # Related Packages
//
//   - github.com/signadot/scorex/ir - IR representation
//   - github.com/signadot/scorex/encode - Encode IR to text
package parse

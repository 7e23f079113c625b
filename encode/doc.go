// Package encode writes IR documents as XML text.
//
// # Usage
//
//	// write the document as parsed, keeping source whitespace
//	err := encode.Encode(doc, w)
//
//	// re-indent with 2 spaces and make sure there is an XML declaration
//	err = encode.Encode(doc, w, encode.EncodeIndent(2), encode.EncodeDeclaration(true))
//
// Output is always UTF-8. An XML declaration naming another encoding is
// rewritten accordingly.
//
// # Related Packages
//
//   - github.com/signadot/scorex/ir - IR representation
//   - github.com/signadot/scorex/parse - Parse text to IR
package encode

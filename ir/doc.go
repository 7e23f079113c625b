// Package ir provides the in memory representation of MusicXML documents.
//
// # Overview
//
// A document is a tree of [Node]s. The IR keeps everything that matters for
// MusicXML semantics in document order: element children, character data,
// comments, the XML declaration and the DOCTYPE directive. MusicXML gives
// meaning to sibling order (backup and forward move a time cursor through
// the notes that precede and follow them), so the IR never stores children
// in a map.
//
// # Node Structure
//
// The Type field indicates the node type:
//
//   - DocumentType: the document itself, whose children are the top level nodes
//   - ElementType: an element with a Tag, ordered Attrs and Children
//   - TextType: character data in Text (tag "#text"), CData marks CDATA sections
//   - CommentType: comment body in Text
//   - ProcInstType: processing instruction, target in Tag and content in Text
//   - DirectiveType: directive such as DOCTYPE in Text
//
// Each node records its Parent and its ParentIndex within Parent.Children.
// The mutators (Append, InsertAt, InsertBefore, InsertAfter, Remove,
// Cut, CutFunc, Detach) keep both consistent.
//
// # Traversal
//
// Nodes are addressed structurally by tag among siblings:
//
//	part := score.Child("part")
//	for _, m := range part.ChildrenByTag("measure") {
//	    if attrs := m.Child("attributes"); attrs != nil {
//	        // ...
//	    }
//	}
//
// Indices are never cached across mutations. ChildrenByTag, Elements and
// Find return fresh slices, so callers may remove the nodes they range over.
//
// # Attributes
//
// Attributes are an ordered slice so that a parse/encode round trip keeps
// them as written. Lookups (Attr, AttrOr, SetAttr, DelAttr) are by name and
// SetAttr keeps the position of an existing attribute. Equal compares
// attribute lists as sets.
package ir

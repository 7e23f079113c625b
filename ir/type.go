package ir

type Type int

const (
	DocumentType Type = iota
	ElementType
	TextType
	CommentType
	ProcInstType
	DirectiveType
)

// pseudo tags for non element nodes
const (
	DocumentTag  = "#document"
	TextTag      = "#text"
	CommentTag   = "#comment"
	DirectiveTag = "#directive"
)

func (t Type) String() string {
	s, ok := map[Type]string{
		DocumentType:  "Document",
		ElementType:   "Element",
		TextType:      "Text",
		CommentType:   "Comment",
		ProcInstType:  "ProcInst",
		DirectiveType: "Directive",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

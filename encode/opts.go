package encode

type EncState struct {
	indent      int
	tabs        bool
	declaration bool
}

type EncodeOption func(*EncState)

// EncodeIndent re-indents the output with n spaces per level. Whitespace
// between elements is replaced. Negative n, the default, writes the
// whitespace held in the document.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeTabs(v bool) EncodeOption {
	return func(es *EncState) { es.tabs = v }
}

// EncodeDeclaration makes sure the output starts with an XML declaration.
func EncodeDeclaration(v bool) EncodeOption {
	return func(es *EncState) { es.declaration = v }
}

package encode

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/signadot/scorex/ir"

	"github.com/beevik/etree"
)

const declaration = `version="1.0" encoding="UTF-8"`

var encodingRE = regexp.MustCompile(`encoding\s*=\s*("[^"]*"|'[^']*')`)

// Encode writes node to w. A document node writes all its top level
// children, any other node is written as a fragment.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: -1}
	for _, opt := range opts {
		opt(es)
	}
	top := []*ir.Node{node}
	if node.Type == ir.DocumentType {
		top = node.Children
	}
	edoc := etree.NewDocument()
	edoc.WriteSettings.CanonicalText = true
	if es.declaration && !hasDeclaration(top) {
		edoc.AddChild(etree.NewProcInst("xml", declaration))
		if es.indent < 0 {
			edoc.AddChild(etree.NewText("\n"))
		}
	}
	for _, c := range top {
		tok, err := toToken(c)
		if err != nil {
			return err
		}
		edoc.AddChild(tok)
	}
	switch {
	case es.tabs:
		edoc.IndentTabs()
	case es.indent >= 0:
		edoc.Indent(es.indent)
	}
	if _, err := edoc.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", ir.ErrEncode, err)
	}
	return nil
}

func hasDeclaration(top []*ir.Node) bool {
	for _, c := range top {
		if c.IsWhitespace() {
			continue
		}
		return c.Type == ir.ProcInstType && c.Tag == "xml"
	}
	return false
}

// utf8Declaration rewrites the encoding of an xml declaration to UTF-8,
// leaving declarations already in UTF-8 as written.
func utf8Declaration(inst string) string {
	m := encodingRE.FindStringSubmatch(inst)
	if m == nil || strings.EqualFold(strings.Trim(m[1], `"'`), "utf-8") {
		return inst
	}
	return encodingRE.ReplaceAllString(inst, `encoding="UTF-8"`)
}

func toToken(node *ir.Node) (etree.Token, error) {
	switch node.Type {
	case ir.ElementType:
		e := etree.NewElement(node.Tag)
		for _, a := range node.Attrs {
			e.CreateAttr(a.Name, a.Value)
		}
		for _, c := range node.Children {
			tok, err := toToken(c)
			if err != nil {
				return nil, err
			}
			e.AddChild(tok)
		}
		return e, nil
	case ir.TextType:
		if node.CData {
			return etree.NewCData(node.Text), nil
		}
		return etree.NewText(node.Text), nil
	case ir.CommentType:
		return etree.NewComment(node.Text), nil
	case ir.DirectiveType:
		return etree.NewDirective(node.Text), nil
	case ir.ProcInstType:
		inst := node.Text
		if node.Tag == "xml" {
			inst = utf8Declaration(inst)
		}
		return etree.NewProcInst(node.Tag, inst), nil
	case ir.DocumentType:
		return nil, fmt.Errorf("%w: nested document at %s", ir.ErrEncode, node.Path())
	}
	return nil, fmt.Errorf("%w: unknown node type %s", ir.ErrEncode, node.Type)
}

package parse

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/scorex/ir"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Parse parses d into a document node whose children are the top level
// nodes of d in document order.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{whitespace: true, comments: true}
	for _, f := range opts {
		f(pOpts)
	}
	d, transcoded, err := decodeBOM(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	edoc := etree.NewDocument()
	edoc.ReadSettings.CharsetReader = charsetReader(transcoded)
	edoc.ReadSettings.Permissive = pOpts.permissive
	edoc.ReadSettings.PreserveCData = true
	if err := edoc.ReadFromBytes(d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if edoc.Root() == nil {
		return nil, ErrEmpty
	}
	doc := ir.NewDocument()
	if err := convertChildren(doc, edoc.Child, pOpts); err != nil {
		return nil, err
	}
	return doc, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return Parse(d, opts...)
}

var boms = [][]byte{
	{0xEF, 0xBB, 0xBF},
	{0xFF, 0xFE},
	{0xFE, 0xFF},
}

// decodeBOM converts input starting with a byte order mark to UTF-8.
func decodeBOM(d []byte) ([]byte, bool, error) {
	for _, bom := range boms {
		if !bytes.HasPrefix(d, bom) {
			continue
		}
		res, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), d)
		if err != nil {
			return nil, false, err
		}
		return res, true, nil
	}
	return d, false, nil
}

func charsetReader(transcoded bool) func(string, io.Reader) (io.Reader, error) {
	return func(label string, r io.Reader) (io.Reader, error) {
		if transcoded && strings.HasPrefix(strings.ToLower(label), "utf-16") {
			// already UTF-8, the declaration still names the source encoding
			return r, nil
		}
		return charset.NewReaderLabel(label, r)
	}
}

func convertChildren(p *ir.Node, toks []etree.Token, opts *parseOpts) error {
	for _, tok := range toks {
		child, err := convert(tok, opts)
		if err != nil {
			return err
		}
		if child == nil {
			continue
		}
		p.Append(child)
	}
	return nil
}

func convert(tok etree.Token, opts *parseOpts) (*ir.Node, error) {
	switch t := tok.(type) {
	case *etree.Element:
		node := ir.NewElement(t.FullTag())
		if len(t.Attr) != 0 {
			node.Attrs = make([]ir.Attr, len(t.Attr))
			for i := range t.Attr {
				node.Attrs[i] = ir.Attr{Name: t.Attr[i].FullKey(), Value: t.Attr[i].Value}
			}
		}
		if err := convertChildren(node, t.Child, opts); err != nil {
			return nil, err
		}
		return node, nil
	case *etree.CharData:
		if t.IsCData() {
			res := ir.NewText(t.Data)
			res.CData = true
			return res, nil
		}
		if !opts.whitespace && t.IsWhitespace() {
			return nil, nil
		}
		return ir.NewText(t.Data), nil
	case *etree.Comment:
		if !opts.comments {
			return nil, nil
		}
		return ir.NewComment(t.Data), nil
	case *etree.Directive:
		return ir.NewDirective(t.Data), nil
	case *etree.ProcInst:
		return ir.NewProcInst(t.Target, t.Inst), nil
	}
	return nil, fmt.Errorf("%w: unexpected token %T", errInternal, tok)
}

package ir

import (
	"slices"
	"strings"
)

type Attr struct {
	Name  string
	Value string
}

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int

	// Tag is the element name, the processing instruction target or
	// one of the pseudo tags for other node types.
	Tag      string
	Attrs    []Attr
	Children []*Node

	// Text holds character data, comment and directive bodies and
	// processing instruction content.
	Text  string
	CData bool
}

func NewDocument(children ...*Node) *Node {
	doc := &Node{Type: DocumentType, Tag: DocumentTag}
	doc.Append(children...)
	return doc
}

func NewElement(tag string, attrs ...Attr) *Node {
	return &Node{
		Type:  ElementType,
		Tag:   tag,
		Attrs: attrs,
	}
}

// NewTextElement returns <tag>text</tag>.
func NewTextElement(tag, text string, attrs ...Attr) *Node {
	res := NewElement(tag, attrs...)
	res.Append(NewText(text))
	return res
}

func NewText(text string) *Node {
	return &Node{Type: TextType, Tag: TextTag, Text: text}
}

func NewComment(text string) *Node {
	return &Node{Type: CommentType, Tag: CommentTag, Text: text}
}

func NewDirective(text string) *Node {
	return &Node{Type: DirectiveType, Tag: DirectiveTag, Text: text}
}

func NewProcInst(target, inst string) *Node {
	return &Node{Type: ProcInstType, Tag: target, Text: inst}
}

func (n *Node) IsElement() bool {
	return n != nil && n.Type == ElementType
}

// IsWhitespace reports whether n is a text node holding only whitespace.
func (n *Node) IsWhitespace() bool {
	return n.Type == TextType && !n.CData && strings.TrimSpace(n.Text) == ""
}

func (n *Node) Attr(name string) (string, bool) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			return n.Attrs[i].Value, true
		}
	}
	return "", false
}

func (n *Node) AttrOr(name, dflt string) string {
	v, ok := n.Attr(name)
	if !ok {
		return dflt
	}
	return v
}

// SetAttr replaces the value of name in place, or appends it.
func (n *Node) SetAttr(name, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

func (n *Node) DelAttr(names ...string) int {
	before := len(n.Attrs)
	n.Attrs = slices.DeleteFunc(n.Attrs, func(a Attr) bool {
		return slices.Contains(names, a.Name)
	})
	return before - len(n.Attrs)
}

// TextContent concatenates the direct text children of n.
func (n *Node) TextContent() string {
	if n.Type != ElementType && n.Type != DocumentType {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Children {
		if c.Type == TextType {
			b.WriteString(c.Text)
		}
	}
	return b.String()
}

// SetText replaces all children of n with a single text node.
func (n *Node) SetText(text string) *Node {
	for _, c := range n.Children {
		c.Parent = nil
	}
	n.Children = nil
	n.Append(NewText(text))
	return n
}

func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		c.Parent = n
		c.ParentIndex = len(n.Children)
		n.Children = append(n.Children, c)
	}
	return n
}

// InsertAt inserts child so that it ends up at index i of n.Children.
func (n *Node) InsertAt(i int, child *Node) {
	if i < 0 {
		i = 0
	}
	if i > len(n.Children) {
		i = len(n.Children)
	}
	child.Parent = n
	n.Children = slices.Insert(n.Children, i, child)
	n.reindex(i)
}

func (n *Node) InsertBefore(ref, child *Node) bool {
	i := n.Index(ref)
	if i < 0 {
		return false
	}
	n.InsertAt(i, child)
	return true
}

func (n *Node) InsertAfter(ref, child *Node) bool {
	i := n.Index(ref)
	if i < 0 {
		return false
	}
	n.InsertAt(i+1, child)
	return true
}

// Index returns the position of child in n.Children or -1.
func (n *Node) Index(child *Node) int {
	if child == nil {
		return -1
	}
	if child.Parent == n && child.ParentIndex < len(n.Children) && n.Children[child.ParentIndex] == child {
		return child.ParentIndex
	}
	return slices.Index(n.Children, child)
}

func (n *Node) Remove(child *Node) bool {
	i := n.Index(child)
	if i < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, i, i+1)
	child.Parent = nil
	child.ParentIndex = 0
	n.reindex(i)
	return true
}

// Detach removes n from its parent.
func (n *Node) Detach() *Node {
	if n.Parent != nil {
		n.Parent.Remove(n)
	}
	return n
}

func (n *Node) reindex(from int) {
	for i := from; i < len(n.Children); i++ {
		n.Children[i].ParentIndex = i
	}
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	dst.Tag = n.Tag
	dst.Text = n.Text
	dst.CData = n.CData
	dst.Attrs = slices.Clone(n.Attrs)
	dst.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		dstC := c.CloneTo(&Node{})
		dstC.Parent = dst
		dstC.ParentIndex = i
		dst.Children[i] = dstC
	}
	return dst
}

// Visit walks n depth first, calling f before (isPost false) and after
// (isPost true) the children. Children are only visited when the pre call
// returns true.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		// copy so f may detach the node it is called on
		for _, c := range slices.Clone(n.Children) {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// RootElement returns the first element child of a document node.
func (n *Node) RootElement() *Node {
	if n.Type == ElementType {
		return n
	}
	for _, c := range n.Children {
		if c.Type == ElementType {
			return c
		}
	}
	return nil
}

// Cut removes child together with a whitespace only text node directly
// before it, so that repeated removals do not leave runs of blank lines.
func (n *Node) Cut(child *Node) bool {
	i := n.Index(child)
	if i < 0 {
		return false
	}
	if i > 0 && n.Children[i-1].IsWhitespace() {
		n.Remove(n.Children[i-1])
	}
	return n.Remove(child)
}

// CutFunc removes the children for which f returns true, each with the
// whitespace text directly before it, and returns how many were removed.
func (n *Node) CutFunc(f func(c *Node) bool) int {
	count := 0
	for _, c := range slices.Clone(n.Children) {
		if c.Parent != n || !f(c) {
			continue
		}
		n.Cut(c)
		count++
	}
	return count
}

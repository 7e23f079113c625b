package ir

import (
	"strings"
)

// Child returns the first element child of n with the given tag.
func (n *Node) Child(tag string) *Node {
	for _, c := range n.Children {
		if c.Type == ElementType && c.Tag == tag {
			return c
		}
	}
	return nil
}

// ChildrenByTag returns the element children of n with the given tag, in
// document order. The result is a fresh slice, so the caller may mutate n
// while ranging over it.
func (n *Node) ChildrenByTag(tag string) []*Node {
	var res []*Node
	for _, c := range n.Children {
		if c.Type == ElementType && c.Tag == tag {
			res = append(res, c)
		}
	}
	return res
}

// Elements returns the element children of n in document order.
func (n *Node) Elements() []*Node {
	res := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Type == ElementType {
			res = append(res, c)
		}
	}
	return res
}

// ChildText returns the trimmed text of the first child with tag.
func (n *Node) ChildText(tag string) (string, bool) {
	c := n.Child(tag)
	if c == nil {
		return "", false
	}
	return strings.TrimSpace(c.TextContent()), true
}

// Descendants returns all element descendants of n with the given tag in
// document order.
func (n *Node) Descendants(tag string) []*Node {
	var res []*Node
	for _, c := range n.Children {
		if c.Type != ElementType {
			continue
		}
		if c.Tag == tag {
			res = append(res, c)
		}
		res = append(res, c.Descendants(tag)...)
	}
	return res
}

// Find follows a slash separated chain of child tags, returning all
// matches in document order, e.g. Find("part/measure").
func (n *Node) Find(path string) []*Node {
	cur := []*Node{n}
	for _, tag := range strings.Split(path, "/") {
		if tag == "" {
			continue
		}
		var next []*Node
		for _, c := range cur {
			next = append(next, c.ChildrenByTag(tag)...)
		}
		cur = next
	}
	return cur
}

// HasContent reports whether n has an element child or non whitespace
// text.
func (n *Node) HasContent() bool {
	for _, c := range n.Children {
		switch c.Type {
		case ElementType:
			return true
		case TextType:
			if !c.IsWhitespace() {
				return true
			}
		}
	}
	return false
}

// PrevElement returns the closest preceding element sibling of n.
func (n *Node) PrevElement() *Node {
	p := n.Parent
	if p == nil {
		return nil
	}
	for i := p.Index(n) - 1; i >= 0; i-- {
		if p.Children[i].Type == ElementType {
			return p.Children[i]
		}
	}
	return nil
}

// NextElement returns the closest following element sibling of n.
func (n *Node) NextElement() *Node {
	p := n.Parent
	if p == nil {
		return nil
	}
	i := p.Index(n)
	if i < 0 {
		return nil
	}
	for j := i + 1; j < len(p.Children); j++ {
		if p.Children[j].Type == ElementType {
			return p.Children[j]
		}
	}
	return nil
}

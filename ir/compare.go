package ir

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b are structurally equal: same types, tags,
// text and attributes and pairwise equal children in the same order.
// Attributes compare as a set.
func Equal(a, b *Node) bool {
	return equal(a, b, false)
}

// EqualContent is like Equal but ignores whitespace only text children.
func EqualContent(a, b *Node) bool {
	return equal(a, b, true)
}

func equal(a, b *Node, skipWS bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type || a.Tag != b.Tag || a.Text != b.Text {
		return false
	}
	if !equalAttrs(a.Attrs, b.Attrs) {
		return false
	}
	ac, bc := a.Children, b.Children
	if skipWS {
		ac, bc = nonWhitespace(ac), nonWhitespace(bc)
	}
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !equal(ac[i], bc[i], skipWS) {
			return false
		}
	}
	return true
}

func nonWhitespace(ns []*Node) []*Node {
	res := make([]*Node, 0, len(ns))
	for _, n := range ns {
		if n.IsWhitespace() {
			continue
		}
		res = append(res, n)
	}
	return res
}

func equalAttrs(a, b []Attr) bool {
	if len(a) != len(b) {
		return false
	}
	byName := func(x, y Attr) int { return cmp.Compare(x.Name, y.Name) }
	sa := slices.SortedFunc(slices.Values(a), byName)
	sb := slices.SortedFunc(slices.Values(b), byName)
	return slices.Equal(sa, sb)
}

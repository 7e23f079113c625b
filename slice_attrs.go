package scorex

import (
	"github.com/signadot/scorex/debug"
	"github.com/signadot/scorex/ir"
)

// attributesOrder is the schema order of the attributes children.
var attributesOrder = map[string]int{
	"footnote":      0,
	"level":         1,
	"divisions":     2,
	"key":           3,
	"time":          4,
	"staves":        5,
	"part-symbol":   6,
	"instruments":   7,
	"clef":          8,
	"staff-details": 9,
	"transpose":     10,
	"for-part":      11,
	"directive":     12,
	"measure-style": 13,
}

// attrState tracks the attributes in effect while walking measures.
type attrState struct {
	divisions *ir.Node
	staves    *ir.Node
	keys      keyed
	times     keyed
	clefs     keyed
	transpose keyed
}

// keyed holds elements by their number attribute in first seen order.
type keyed struct {
	order []string
	byNum map[string]*ir.Node
}

func (k *keyed) set(num string, n *ir.Node) {
	if k.byNum == nil {
		k.byNum = map[string]*ir.Node{}
	}
	if _, ok := k.byNum[num]; !ok {
		k.order = append(k.order, num)
	}
	k.byNum[num] = n
}

func (k *keyed) each(f func(num string, n *ir.Node)) {
	for _, num := range k.order {
		f(num, k.byNum[num])
	}
}

func (s *attrState) apply(attrs *ir.Node) {
	for _, c := range attrs.Elements() {
		switch c.Tag {
		case "divisions":
			s.divisions = c
		case "staves":
			s.staves = c
		case "key":
			s.keys.set(c.AttrOr("number", ""), c)
		case "time":
			s.times.set(c.AttrOr("number", ""), c)
		case "clef":
			s.clefs.set(c.AttrOr("number", "1"), c)
		case "transpose":
			s.transpose.set(c.AttrOr("number", ""), c)
		}
	}
}

// carryAttributes merges the state established by the measures before the
// first kept measure of part into that measure's attributes.
func carryAttributes(part *ir.Node, keep func(*ir.Node) bool) {
	measures := part.ChildrenByTag(tagMeasure)
	first := -1
	for i, m := range measures {
		if keep(m) {
			first = i
			break
		}
	}
	if first <= 0 {
		return
	}
	state := &attrState{}
	for _, m := range measures[:first] {
		for _, a := range m.ChildrenByTag(tagAttributes) {
			state.apply(a)
		}
	}
	target := measures[first]
	attrs := target.Child(tagAttributes)
	if attrs == nil {
		attrs = ir.NewElement(tagAttributes)
		target.InsertAt(attributesIndex(target), attrs)
	}
	have := &attrState{}
	have.apply(attrs)

	var carried []*ir.Node
	if state.divisions != nil && have.divisions == nil {
		carried = append(carried, state.divisions)
	}
	if len(have.keys.order) == 0 {
		state.keys.each(func(_ string, n *ir.Node) { carried = append(carried, n) })
	}
	if len(have.times.order) == 0 {
		state.times.each(func(_ string, n *ir.Node) { carried = append(carried, n) })
	}
	if state.staves != nil && have.staves == nil {
		carried = append(carried, state.staves)
	}
	state.clefs.each(func(num string, n *ir.Node) {
		if _, ok := have.clefs.byNum[num]; !ok {
			carried = append(carried, n)
		}
	})
	if len(have.transpose.order) == 0 {
		state.transpose.each(func(_ string, n *ir.Node) { carried = append(carried, n) })
	}
	for _, n := range carried {
		insertOrdered(attrs, n.Clone())
	}
	if debug.Slice() && len(carried) != 0 {
		debug.Logf("slice: carried %d attributes into %s\n", len(carried), target.Path())
	}
}

// attributesIndex is where a new attributes element goes in m: after any
// leading print elements.
func attributesIndex(m *ir.Node) int {
	for i, c := range m.Children {
		if c.Type != ir.ElementType || c.Tag == "print" {
			continue
		}
		return i
	}
	return len(m.Children)
}

func insertOrdered(attrs, n *ir.Node) {
	rank := attributesOrder[n.Tag]
	for _, c := range attrs.Elements() {
		r, ok := attributesOrder[c.Tag]
		if ok && r > rank {
			attrs.InsertBefore(c, n)
			return
		}
	}
	attrs.Append(n)
}

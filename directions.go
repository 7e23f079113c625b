package scorex

import (
	"github.com/signadot/scorex/debug"
	"github.com/signadot/scorex/ir"
)

// filterDirections drops metronome marks, and dynamics when strip is set,
// applies the style rules to words and removes what is left empty.
func filterDirections(m *ir.Node, policy *Policy, strip, reset bool) {
	for _, d := range m.ChildrenByTag(tagDirection) {
		for _, dt := range d.ChildrenByTag(tagDirectionType) {
			dt.CutFunc(func(c *ir.Node) bool {
				return isElem(c, "metronome") || (strip && isElem(c, "dynamics"))
			})
			for _, w := range dt.ChildrenByTag("words") {
				for i := range policy.StyleRules {
					policy.StyleRules[i].Apply(w, reset)
				}
			}
			if !dt.HasContent() {
				d.Cut(dt)
			}
		}
		if d.Child(tagDirectionType) == nil {
			if debug.Optimize() {
				debug.Logf("optimize: removing empty direction %s\n", d.Path())
			}
			m.Cut(d)
		}
	}
}

// hasMarking reports whether a direction-type of d holds a tag element.
func hasMarking(d *ir.Node, tag string) bool {
	for _, dt := range d.ChildrenByTag(tagDirectionType) {
		if dt.Child(tag) != nil {
			return true
		}
	}
	return false
}

// alignDynamics moves the dynamics directions found before the first
// sounding note of m so they directly precede it, keeping their order.
func alignDynamics(m *ir.Node) {
	var first *ir.Node
	for _, c := range m.ChildrenByTag(tagNote) {
		if c.Child("rest") == nil {
			first = c
			break
		}
	}
	if first == nil {
		return
	}
	var moving []*ir.Node
	for _, c := range m.Elements() {
		if c == first {
			break
		}
		if c.Tag == tagDirection && hasMarking(c, "dynamics") {
			moving = append(moving, c)
		}
	}
	for _, d := range moving {
		m.Cut(d)
		placeBefore(first, d)
	}
	if debug.Optimize() && len(moving) != 0 {
		debug.Logf("optimize: aligned %d dynamics to %s\n", len(moving), first.Path())
	}
}

// alignTempo moves directions with words to the start of m, right after
// its attributes when it has some.
func alignTempo(m *ir.Node) {
	var moving []*ir.Node
	for _, d := range m.ChildrenByTag(tagDirection) {
		if hasMarking(d, "words") {
			moving = append(moving, d)
		}
	}
	if len(moving) == 0 {
		return
	}
	for _, d := range moving {
		m.Cut(d)
	}
	if anchor := m.Child(tagAttributes); anchor != nil {
		for _, d := range moving {
			placeAfter(anchor, d)
			anchor = d
		}
		return
	}
	elems := m.Elements()
	if len(elems) == 0 {
		for _, d := range moving {
			m.Append(d)
		}
		return
	}
	for _, d := range moving {
		placeBefore(elems[0], d)
	}
}

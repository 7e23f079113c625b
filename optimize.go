package scorex

import (
	"github.com/signadot/scorex/debug"
	"github.com/signadot/scorex/ir"
)

type OptimizeConfig struct {
	RemovePartGroups bool
	ResetPositioning bool
	AlignDynamics    bool
	Policy           *Policy
}

type OptimizeOption func(*OptimizeConfig)

// RemovePartGroups deletes part groups instead of adding a brace.
func RemovePartGroups(v bool) OptimizeOption {
	return func(c *OptimizeConfig) { c.RemovePartGroups = v }
}

// ResetPositioning removes page layout, explicit breaks and hand placed
// direction coordinates so the renderer lays out the excerpt itself.
func ResetPositioning(v bool) OptimizeOption {
	return func(c *OptimizeConfig) { c.ResetPositioning = v }
}

// AlignDynamics moves dynamics placed before the first sounding note of a
// measure to that note.
func AlignDynamics(v bool) OptimizeOption {
	return func(c *OptimizeConfig) { c.AlignDynamics = v }
}

// WithPolicy replaces DefaultPolicy. A nil policy disables style rules and
// dynamics removal.
func WithPolicy(p *Policy) OptimizeOption {
	return func(c *OptimizeConfig) { c.Policy = p }
}

var coordAttrs = []string{"default-x", "default-y", "relative-x", "relative-y"}

// Optimize rewrites doc in place for rendering. Pitches, durations, voices
// and part assignment are never changed.
func Optimize(doc *ir.Node, opts ...OptimizeOption) error {
	cfg := &OptimizeConfig{Policy: DefaultPolicy()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.Optimize(doc)
}

func (c *OptimizeConfig) Optimize(doc *ir.Node) error {
	score, err := ScoreRoot(doc)
	if err != nil {
		return err
	}
	policy := c.Policy
	if policy == nil {
		policy = &Policy{}
	}
	// evaluated up front so that policy errors leave doc untouched
	strip, err := stripDynamicsParts(doc, policy)
	if err != nil {
		return err
	}

	if c.ResetPositioning {
		resetPositioning(score)
	}
	if c.RemovePartGroups {
		removePartGroups(score)
	} else {
		ensureBrace(score)
	}
	for i, part := range score.ChildrenByTag(tagPart) {
		for _, m := range part.ChildrenByTag(tagMeasure) {
			cutTime(m)
			hideTuplets(m)
			filterDirections(m, policy, strip[i], c.ResetPositioning)
			if c.AlignDynamics {
				alignDynamics(m)
			}
			if c.ResetPositioning {
				alignTempo(m)
			}
		}
	}
	return nil
}

func stripDynamicsParts(doc *ir.Node, policy *Policy) (map[int]bool, error) {
	res := map[int]bool{}
	if policy.StripDynamics == nil {
		return res, nil
	}
	parts, err := Parts(doc)
	if err != nil {
		return nil, err
	}
	for _, p := range parts {
		strip, err := policy.StripDynamics(p)
		if err != nil {
			return nil, err
		}
		res[p.Index] = strip
	}
	return res, nil
}

func resetPositioning(score *ir.Node) {
	n := score.CutFunc(func(c *ir.Node) bool {
		return isElem(c, "defaults") || isElem(c, "credit")
	})
	if debug.Optimize() {
		debug.Logf("optimize: removed %d defaults/credit elements\n", n)
	}
	for _, part := range score.ChildrenByTag(tagPart) {
		for _, m := range part.ChildrenByTag(tagMeasure) {
			m.CutFunc(func(c *ir.Node) bool {
				return isElem(c, "print")
			})
			for _, d := range m.ChildrenByTag(tagDirection) {
				stripCoords(d)
			}
		}
	}
}

// stripCoords removes coordinates from a direction, its children and the
// content of its direction-type children.
func stripCoords(d *ir.Node) {
	d.DelAttr(coordAttrs...)
	for _, c := range d.Elements() {
		c.DelAttr(coordAttrs...)
		if c.Tag != tagDirectionType {
			continue
		}
		for _, cc := range c.Elements() {
			cc.DelAttr(coordAttrs...)
		}
	}
}

func removePartGroups(score *ir.Node) {
	pl := score.Child(tagPartList)
	if pl == nil {
		return
	}
	pl.CutFunc(func(c *ir.Node) bool {
		return isElem(c, tagPartGroup)
	})
}

// ensureBrace wraps all parts in a braced group unless the part list
// already has a group.
func ensureBrace(score *ir.Node) {
	pl := score.Child(tagPartList)
	if pl == nil || pl.Child(tagPartGroup) != nil {
		return
	}
	sps := pl.ChildrenByTag(tagScorePart)
	if len(sps) == 0 {
		return
	}
	start := ir.NewElement(tagPartGroup,
		ir.Attr{Name: "type", Value: "start"},
		ir.Attr{Name: "number", Value: "1"})
	start.Append(
		ir.NewTextElement("group-symbol", "brace"),
		ir.NewTextElement("group-barline", "yes"))
	stop := ir.NewElement(tagPartGroup,
		ir.Attr{Name: "type", Value: "stop"},
		ir.Attr{Name: "number", Value: "1"})
	placeBefore(sps[0], start)
	placeAfter(sps[len(sps)-1], stop)
	if debug.Optimize() {
		debug.Logf("optimize: added %v around %d parts\n", start, len(sps))
	}
}

func cutTime(m *ir.Node) {
	for _, a := range m.ChildrenByTag(tagAttributes) {
		for _, t := range a.ChildrenByTag("time") {
			beats, _ := t.ChildText("beats")
			beatType, _ := t.ChildText("beat-type")
			if beats == "2" && beatType == "2" {
				t.SetAttr("symbol", "cut")
			}
		}
	}
}

func hideTuplets(m *ir.Node) {
	for _, t := range m.Find("note/notations/tuplet") {
		t.SetAttr("bracket", "no")
		t.SetAttr("show-number", "none")
	}
}

// placeBefore inserts n before ref, repeating the indentation in front
// of ref.
func placeBefore(ref, n *ir.Node) {
	p := ref.Parent
	i := p.Index(ref)
	if i > 0 && p.Children[i-1].IsWhitespace() {
		p.InsertAt(i, n)
		p.InsertAt(i+1, p.Children[i-1].Clone())
		return
	}
	p.InsertAt(i, n)
}

// placeAfter inserts n after ref, repeating the indentation in front of
// ref.
func placeAfter(ref, n *ir.Node) {
	p := ref.Parent
	i := p.Index(ref)
	if i > 0 && p.Children[i-1].IsWhitespace() {
		p.InsertAt(i+1, p.Children[i-1].Clone())
		p.InsertAt(i+2, n)
		return
	}
	p.InsertAt(i+1, n)
}

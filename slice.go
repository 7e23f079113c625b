package scorex

import (
	"fmt"

	"github.com/signadot/scorex/debug"
	"github.com/signadot/scorex/ir"
)

type SliceConfig struct {
	Start, End       *int
	PartID           string
	Staff            int
	AllowMissingPart bool
	CarryAttributes  bool
}

type SliceOption func(*SliceConfig)

// StartMeasure keeps measures numbered n and above.
func StartMeasure(n int) SliceOption {
	return func(c *SliceConfig) { c.Start = &n }
}

// EndMeasure keeps measures numbered n and below.
func EndMeasure(n int) SliceOption {
	return func(c *SliceConfig) { c.End = &n }
}

func Measures(start, end int) SliceOption {
	return func(c *SliceConfig) {
		c.Start = &start
		c.End = &end
	}
}

// Part keeps only the part with the given score-part id.
func Part(id string) SliceOption {
	return func(c *SliceConfig) { c.PartID = id }
}

// Staff keeps only content of staff n, which must be positive.
func Staff(n int) SliceOption {
	return func(c *SliceConfig) { c.Staff = n }
}

// AllowMissingPart makes slicing by an unknown part id produce a score
// without parts instead of returning ErrNotFound.
func AllowMissingPart(v bool) SliceOption {
	return func(c *SliceConfig) { c.AllowMissingPart = v }
}

// CarryAttributes copies the clef, key, time and related state in effect
// at the first kept measure into it when earlier measures are dropped.
func CarryAttributes(v bool) SliceOption {
	return func(c *SliceConfig) { c.CarryAttributes = v }
}

func (c *SliceConfig) measures() bool {
	return c.Start != nil || c.End != nil
}

func (c *SliceConfig) inRange(m *ir.Node) bool {
	n := MeasureNumber(m)
	if c.Start != nil && n < *c.Start {
		return false
	}
	if c.End != nil && n > *c.End {
		return false
	}
	return true
}

// Extracted reports whether the configuration narrows the score to a
// single part or staff.
func (c *SliceConfig) Extracted() bool {
	return c.PartID != "" || c.Staff > 0
}

// Slice narrows doc in place to the configured part, measure window and
// staff. Note content is never changed, only kept or dropped, with the
// exception of staves declarations which become 1 when slicing a staff.
func Slice(doc *ir.Node, opts ...SliceOption) error {
	cfg := &SliceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.Slice(doc)
}

func (c *SliceConfig) Slice(doc *ir.Node) error {
	score, err := ScoreRoot(doc)
	if err != nil {
		return err
	}
	if c.Staff < 0 {
		return fmt.Errorf("%w: staff number must be positive, got %d", ErrInvalid, c.Staff)
	}
	if c.Start != nil && c.End != nil && *c.Start > *c.End {
		return fmt.Errorf("%w: start measure %d after end measure %d", ErrInvalid, *c.Start, *c.End)
	}
	if c.PartID != "" {
		if err := slicePart(score, c.PartID, c.AllowMissingPart); err != nil {
			return err
		}
	}
	if c.measures() {
		for _, part := range score.ChildrenByTag(tagPart) {
			if c.CarryAttributes {
				carryAttributes(part, c.inRange)
			}
			n := part.CutFunc(func(m *ir.Node) bool {
				return isElem(m, tagMeasure) && !c.inRange(m)
			})
			if debug.Slice() {
				debug.Logf("slice: dropped %d measures from %s\n", n, part.Path())
			}
		}
	}
	if c.Staff > 0 {
		for _, part := range score.ChildrenByTag(tagPart) {
			for _, m := range part.ChildrenByTag(tagMeasure) {
				sliceStaff(m, c.Staff)
			}
		}
	}
	return nil
}

func slicePart(score *ir.Node, id string, allowMissing bool) error {
	pl := score.Child(tagPartList)
	found := false
	if pl != nil {
		for _, sp := range pl.ChildrenByTag(tagScorePart) {
			if sp.AttrOr("id", "") == id {
				found = true
				break
			}
		}
	} else {
		for _, p := range score.ChildrenByTag(tagPart) {
			if p.AttrOr("id", "") == id {
				found = true
				break
			}
		}
	}
	if !found && !allowMissing {
		return fmt.Errorf("%w: no score-part with id %q", ErrNotFound, id)
	}
	score.CutFunc(func(c *ir.Node) bool {
		return isElem(c, tagPart) && c.AttrOr("id", "") != id
	})
	if pl == nil {
		return nil
	}
	pl.CutFunc(func(c *ir.Node) bool {
		return isElem(c, tagScorePart) && c.AttrOr("id", "") != id
	})
	pruneEmptyGroups(pl)
	return nil
}

// pruneEmptyGroups removes part-group start/stop pairs that no longer
// enclose a score-part.
func pruneEmptyGroups(pl *ir.Node) {
	open := map[string]*ir.Node{}
	used := map[*ir.Node]bool{}
	var empty []*ir.Node
	for _, c := range pl.Elements() {
		switch c.Tag {
		case tagPartGroup:
			num := c.AttrOr("number", "1")
			switch c.AttrOr("type", "") {
			case "start":
				open[num] = c
			case "stop":
				start := open[num]
				if start != nil && !used[start] {
					empty = append(empty, start, c)
				}
				delete(open, num)
			}
		case tagScorePart:
			for _, start := range open {
				used[start] = true
			}
		}
	}
	for _, start := range open {
		if !used[start] {
			empty = append(empty, start)
		}
	}
	for _, g := range empty {
		if debug.Slice() {
			debug.Logf("slice: pruning empty %s\n", g.Path())
		}
		pl.Cut(g)
	}
}

func sliceStaff(m *ir.Node, staff int) {
	m.CutFunc(func(c *ir.Node) bool {
		if c.Type != ir.ElementType {
			return false
		}
		st, ok := c.ChildText(tagStaff)
		return ok && !sameNumber(st, staff)
	})
	for _, a := range m.ChildrenByTag(tagAttributes) {
		a.CutFunc(func(c *ir.Node) bool {
			if c.Type != ir.ElementType {
				return false
			}
			switch c.Tag {
			case "clef":
				// clefs without a number belong to staff 1
				return !sameNumber(c.AttrOr("number", "1"), staff)
			case "key", "time", "staff-details":
				// without a number these apply to all staves
				num, ok := c.Attr("number")
				return ok && !sameNumber(num, staff)
			}
			return false
		})
		for _, s := range a.ChildrenByTag("staves") {
			s.SetText("1")
		}
	}
}

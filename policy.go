package scorex

import (
	"fmt"
	"strings"

	"github.com/signadot/scorex/debug"
	"github.com/signadot/scorex/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"golang.org/x/text/cases"
)

// Policy holds the presentation decisions of the optimizer which are tied
// to particular source material rather than to MusicXML semantics.
type Policy struct {
	// StyleRules are applied in order to every words element.
	StyleRules []StyleRule
	// StripDynamics selects the parts whose dynamics are removed. Nil
	// keeps dynamics everywhere.
	StripDynamics PartPredicate
}

// PartPredicate decides a policy for one part.
type PartPredicate func(PartInfo) (bool, error)

// StyleRule overrides the display attributes of words elements whose text
// contains Contains.
type StyleRule struct {
	Name       string
	Contains   string
	IgnoreCase bool
	// Set is applied on every match.
	Set []ir.Attr
	// SetUnlessReset is applied when positioning was not reset.
	SetUnlessReset []ir.Attr
}

// DefaultStyleRules correct engraving artifacts of the source scores the
// excerpts are cut from. They are string matches on particular markings,
// not a general text formatting policy.
var DefaultStyleRules = []StyleRule{
	{
		Name:           "adagio",
		Contains:       "Adagio",
		Set:            []ir.Attr{{Name: "font-weight", Value: "bold"}},
		SetUnlessReset: []ir.Attr{{Name: "relative-y", Value: "35"}},
	},
	{
		Name:     "si-deve",
		Contains: "Si deve",
		Set:      []ir.Attr{{Name: "font-style", Value: "normal"}},
	},
}

// DefaultStripDynamics shows dynamics only once in a two staff piano
// reduction by removing them from the second part.
const DefaultStripDynamics = "index == 1"

func DefaultPolicy() *Policy {
	return &Policy{
		StyleRules:    DefaultStyleRules,
		StripDynamics: PartIndex(1),
	}
}

// PartIndex matches the part at position i in document order.
func PartIndex(i int) PartPredicate {
	return func(p PartInfo) (bool, error) {
		return p.Index == i, nil
	}
}

func (r *StyleRule) Match(text string) bool {
	if r.Contains == "" {
		return false
	}
	if r.IgnoreCase {
		fold := cases.Fold()
		return strings.Contains(fold.String(text), fold.String(r.Contains))
	}
	return strings.Contains(text, r.Contains)
}

// Apply sets the rule's attributes on words when its text matches.
func (r *StyleRule) Apply(words *ir.Node, reset bool) bool {
	if !r.Match(words.TextContent()) {
		return false
	}
	for _, a := range r.Set {
		words.SetAttr(a.Name, a.Value)
	}
	if !reset {
		for _, a := range r.SetUnlessReset {
			words.SetAttr(a.Name, a.Value)
		}
	}
	if debug.Policy() {
		debug.Logf("policy: rule %q applied to %s\n", r.Name, words.Path())
	}
	return true
}

type partEnv struct {
	Index  int    `expr:"index"`
	ID     string `expr:"id"`
	Name   string `expr:"name"`
	Staves int    `expr:"staves"`
	Parts  int    `expr:"parts"`
}

// CompilePartCondition compiles a boolean expression over the variables
// index, id, name, staves and parts, e.g. `parts == 2 && index == 1`.
func CompilePartCondition(src string) (PartPredicate, error) {
	prog, err := expr.Compile(src, expr.Env(partEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: part condition %q: %w", ErrInvalid, src, err)
	}
	return exprPredicate(src, prog), nil
}

func exprPredicate(src string, prog *vm.Program) PartPredicate {
	return func(p PartInfo) (bool, error) {
		env := partEnv{
			Index:  p.Index,
			ID:     p.ID,
			Name:   p.Name,
			Staves: p.Staves,
			Parts:  p.Total,
		}
		out, err := expr.Run(prog, env)
		if err != nil {
			return false, fmt.Errorf("evaluating %q on part %q: %w", src, p.ID, err)
		}
		res, _ := out.(bool)
		if debug.Policy() {
			debug.Logf("policy: %q on part %d (%s) = %t\n", src, p.Index, p.ID, res)
		}
		return res, nil
	}
}

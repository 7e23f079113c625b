package scorex

import (
	"errors"
	"testing"

	"github.com/signadot/scorex/ir"
)

func TestCompilePartCondition(t *testing.T) {
	parts := []PartInfo{
		{Index: 0, Total: 3, ID: "P1", Name: "Piano RH", Staves: 1},
		{Index: 1, Total: 3, ID: "P2", Name: "Piano LH", Staves: 1},
		{Index: 2, Total: 3, ID: "P3", Name: "Violin", Staves: 1},
	}
	tests := []struct {
		src  string
		want []bool
	}{
		{DefaultStripDynamics, []bool{false, true, false}},
		{`id == "P3"`, []bool{false, false, true}},
		{`parts == 2 && index == 1`, []bool{false, false, false}},
		{`name contains "Piano" && index > 0`, []bool{false, true, false}},
		{`staves == 1`, []bool{true, true, true}},
	}
	for _, tt := range tests {
		pred, err := CompilePartCondition(tt.src)
		if err != nil {
			t.Fatalf("%s: %v", tt.src, err)
		}
		for i, p := range parts {
			got, err := pred(p)
			if err != nil {
				t.Fatalf("%s: %v", tt.src, err)
			}
			if got != tt.want[i] {
				t.Errorf("%s on %s = %t", tt.src, p.ID, got)
			}
		}
	}
}

func TestCompilePartConditionErrors(t *testing.T) {
	for _, src := range []string{`index +`, `id`, `unknown == 1`} {
		if _, err := CompilePartCondition(src); !errors.Is(err, ErrInvalid) {
			t.Errorf("%q: expected ErrInvalid, got %v", src, err)
		}
	}
}

func TestStyleRuleMatch(t *testing.T) {
	tests := []struct {
		rule StyleRule
		text string
		want bool
	}{
		{StyleRule{Contains: "Adagio"}, "Adagio molto", true},
		{StyleRule{Contains: "Adagio"}, "ADAGIO", false},
		{StyleRule{Contains: "Adagio", IgnoreCase: true}, "ADAGIO", true},
		{StyleRule{}, "anything", false},
	}
	for _, tt := range tests {
		if got := tt.rule.Match(tt.text); got != tt.want {
			t.Errorf("%q in %q = %t", tt.rule.Contains, tt.text, got)
		}
	}
}

func TestOptimizeCustomPolicy(t *testing.T) {
	strip, err := CompilePartCondition(`id == "P1"`)
	if err != nil {
		t.Fatal(err)
	}
	policy := &Policy{
		StyleRules: []StyleRule{{
			Name:       "dolce",
			Contains:   "DOLCE",
			IgnoreCase: true,
			Set:        []ir.Attr{{Name: "font-style", Value: "italic"}},
		}},
		StripDynamics: strip,
	}
	doc := mustParse(t, `<score-partwise>
  <part-list><score-part id="P1"/><score-part id="P2"/></part-list>
  <part id="P1"><measure number="1"><direction><direction-type><dynamics><mf/></dynamics></direction-type></direction></measure></part>
  <part id="P2"><measure number="1"><direction><direction-type><dynamics><mf/></dynamics></direction-type><direction-type><words>Adagio dolce</words></direction-type></direction></measure></part>
</score-partwise>`)
	if err := Optimize(doc, WithPolicy(policy)); err != nil {
		t.Fatal(err)
	}
	parts := doc.RootElement().ChildrenByTag(tagPart)
	if len(parts[0].Descendants(tagDirection)) != 0 {
		t.Error("P1 dynamics kept")
	}
	if len(parts[1].Descendants("dynamics")) != 1 {
		t.Error("P2 dynamics removed")
	}
	w := parts[1].Descendants("words")[0]
	if w.AttrOr("font-style", "") != "italic" {
		t.Errorf("custom rule not applied: %v", w.Attrs)
	}
	if _, ok := w.Attr("font-weight"); ok {
		t.Error("default rule applied with custom policy")
	}
}

package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func measure() (*Node, *Node, *Node) {
	a := NewElement("attributes")
	n := NewElement("note", Attr{Name: "default-x", Value: "12"})
	m := NewElement("measure", Attr{Name: "number", Value: "1"})
	m.Append(NewText("\n  "), a, NewText("\n  "), n, NewText("\n"))
	return m, a, n
}

func tags(ns []*Node) []string {
	var res []string
	for _, n := range ns {
		res = append(res, n.Tag)
	}
	return res
}

func TestCut(t *testing.T) {
	m, a, n := measure()
	if !m.Cut(a) {
		t.Fatal("expected cut")
	}
	want := []string{TextTag, "note", TextTag}
	if diff := cmp.Diff(want, tags(m.Children)); diff != "" {
		t.Errorf("children (-want +got):\n%s", diff)
	}
	if a.Parent != nil {
		t.Error("cut node still has parent")
	}
	for i, c := range m.Children {
		if c.ParentIndex != i {
			t.Errorf("child %d has ParentIndex %d", i, c.ParentIndex)
		}
	}
	if m.Cut(a) {
		t.Error("cut of detached node succeeded")
	}
	if n.PrevElement() != nil {
		t.Error("note should be first element")
	}
}

func TestCutFunc(t *testing.T) {
	m, _, _ := measure()
	got := m.CutFunc(func(c *Node) bool { return c.IsElement() })
	if got != 2 {
		t.Fatalf("cut %d, want 2", got)
	}
	if len(m.Children) != 1 || !m.Children[0].IsWhitespace() {
		t.Errorf("expected trailing whitespace only, got %v", tags(m.Children))
	}
	if m.HasContent() {
		t.Error("whitespace only measure reported content")
	}
}

func TestInsert(t *testing.T) {
	m, a, n := measure()
	d := NewElement("direction")
	m.InsertAfter(a, d)
	if got := d.PrevElement(); got != a {
		t.Errorf("prev of direction: %v", got)
	}
	if got := d.NextElement(); got != n {
		t.Errorf("next of direction: %v", got)
	}
	if m.Index(d) != d.ParentIndex {
		t.Errorf("index %d, ParentIndex %d", m.Index(d), d.ParentIndex)
	}
	b := NewElement("barline")
	if !m.InsertBefore(a, b) || b.PrevElement() != nil || b.NextElement() != a {
		t.Errorf("barline not first: %v", tags(m.Children))
	}
	if m.InsertBefore(NewElement("stray"), b) {
		t.Error("insert before foreign ref succeeded")
	}
}

func TestAttrs(t *testing.T) {
	n := NewElement("words", Attr{Name: "default-y", Value: "20"}, Attr{Name: "font-size", Value: "9"})
	n.SetAttr("default-y", "0").SetAttr("font-weight", "bold")
	want := []Attr{{"default-y", "0"}, {"font-size", "9"}, {"font-weight", "bold"}}
	if diff := cmp.Diff(want, n.Attrs); diff != "" {
		t.Errorf("attrs (-want +got):\n%s", diff)
	}
	if got := n.DelAttr("default-y", "relative-x"); got != 1 {
		t.Errorf("deleted %d", got)
	}
	if _, ok := n.Attr("default-y"); ok {
		t.Error("default-y still present")
	}
	if got := n.AttrOr("relative-y", "none"); got != "none" {
		t.Errorf("AttrOr: %q", got)
	}
}

func TestClone(t *testing.T) {
	m, a, _ := measure()
	a.Append(NewTextElement("divisions", "4"))
	c := m.Clone()
	if !Equal(m, c) {
		t.Fatal("clone differs")
	}
	c.Child("attributes").Child("divisions").SetText("8")
	if Equal(m, c) {
		t.Error("clone shares children")
	}
	if txt, _ := a.ChildText("divisions"); txt != "4" {
		t.Errorf("original changed: %q", txt)
	}
}

func TestEqualContent(t *testing.T) {
	a := NewElement("note", Attr{Name: "a", Value: "1"}, Attr{Name: "b", Value: "2"})
	a.Append(NewText("\n "), NewElement("rest"))
	b := NewElement("note", Attr{Name: "b", Value: "2"}, Attr{Name: "a", Value: "1"})
	b.Append(NewElement("rest"))
	if Equal(a, b) {
		t.Error("Equal ignored whitespace")
	}
	if !EqualContent(a, b) {
		t.Error("EqualContent should ignore whitespace and attribute order")
	}
	b.SetAttr("a", "3")
	if EqualContent(a, b) {
		t.Error("attribute value ignored")
	}
}

func TestPath(t *testing.T) {
	doc := NewDocument()
	score := NewElement("score-partwise")
	doc.Append(score)
	p := NewElement("part")
	score.Append(p)
	m1, m2 := NewElement("measure"), NewElement("measure")
	p.Append(m1, m2)
	n := NewElement("note")
	m2.Append(n)
	tests := []struct {
		node *Node
		want string
	}{
		{score, "/score-partwise"},
		{p, "/score-partwise/part"},
		{m1, "/score-partwise/part/measure[0]"},
		{n, "/score-partwise/part/measure[1]/note"},
	}
	for _, tt := range tests {
		if got := tt.node.Path(); got != tt.want {
			t.Errorf("got %q want %q", got, tt.want)
		}
	}
}

func TestFind(t *testing.T) {
	m := NewElement("measure")
	for i := 0; i < 2; i++ {
		note := NewElement("note")
		nots := NewElement("notations")
		nots.Append(NewElement("tuplet"), NewElement("slur"))
		note.Append(nots)
		m.Append(note)
	}
	if got := len(m.Find("note/notations/tuplet")); got != 2 {
		t.Errorf("found %d tuplets", got)
	}
	if got := len(m.Descendants("slur")); got != 2 {
		t.Errorf("found %d slurs", got)
	}
	if got := m.Find("note/beam"); len(got) != 0 {
		t.Errorf("found %d beams", len(got))
	}
}

func TestVisitDetach(t *testing.T) {
	m, _, _ := measure()
	err := m.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost && n.Tag == "note" {
			n.Detach()
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if m.Child("note") != nil {
		t.Error("note not detached")
	}
}

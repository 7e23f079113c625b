package libdiff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/scorex/parse"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	from := "a\nb\nc\nd\n"
	to := "a\nB\nc\nd\ne\n"
	got := Lines(from, to)
	want := []Line{
		{Equal, "a"},
		{Delete, "b"},
		{Insert, "B"},
		{Equal, "c"},
		{Equal, "d"},
		{Insert, "e"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Error("expected change")
	}
	if Changed(Lines(from, from)) {
		t.Error("identical input changed")
	}
}

func TestWrite(t *testing.T) {
	var from, to []string
	for i := 0; i < 10; i++ {
		from = append(from, string(rune('a'+i)))
	}
	to = append(to, from...)
	to[1] = "X"
	to[8] = "Y"
	lines := Lines(strings.Join(from, "\n")+"\n", strings.Join(to, "\n")+"\n")

	buf := bytes.NewBuffer(nil)
	if err := Write(buf, lines, nil, 1); err != nil {
		t.Fatal(err)
	}
	want := `@@ -1 +1 @@
 a
-b
+X
 c
@@ -8 +8 @@
 h
-i
+Y
 j
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := Write(buf, lines, nil, -1); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "@@") || strings.Count(buf.String(), "\n") != 12 {
		t.Errorf("full output:\n%s", buf.String())
	}
}

func TestWriteColors(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Write(buf, Lines("a\n", "b\n"), NewColors(), 0); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("no color codes: %q", buf.String())
	}
}

func TestDocs(t *testing.T) {
	a, err := parse.ParseString(`<score-partwise><part id="P1"><measure number="1"/></part></score-partwise>`)
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.ParseString(`<score-partwise>
  <part id="P1">
    <measure number="2"/>
  </part>
</score-partwise>`, parse.ParseWhitespace(false))
	if err != nil {
		t.Fatal(err)
	}
	lines, err := Docs(a, b)
	if err != nil {
		t.Fatal(err)
	}
	var changed []Line
	for _, l := range lines {
		if l.Op != Equal {
			changed = append(changed, l)
		}
	}
	want := []Line{
		{Delete, `    <measure number="1"/>`},
		{Insert, `    <measure number="2"/>`},
	}
	if diff := cmp.Diff(want, changed); diff != "" {
		t.Errorf("changes (-want +got):\n%s", diff)
	}
}

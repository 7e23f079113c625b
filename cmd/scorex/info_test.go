package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/scorex"
	"github.com/signadot/scorex/encode"
	"github.com/signadot/scorex/parse"

	"github.com/klauspost/compress/zip"
)

func TestPartsTable(t *testing.T) {
	out := partsTable([]scorex.PartInfo{
		{Index: 0, Total: 2, ID: "P1", Name: "Right", Staves: 1, Measures: 8, First: "1", Last: "8"},
		{Index: 1, Total: 2, ID: "P2", Name: "Left", Staves: 2, Measures: 8, First: "1", Last: "8"},
	})
	for _, s := range []string{"ID", "P1", "Right", "P2", "Left"} {
		if !strings.Contains(out, s) {
			t.Errorf("missing %q in\n%s", s, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 5 {
		t.Errorf("%d lines in\n%s", got+1, out)
	}
}

func TestSliceFlags(t *testing.T) {
	start := 3
	f := &SliceFlags{Start: &start, Part: "P1", AllowMissing: true}
	p := f.params()
	if p.Start == nil || *p.Start != 3 || p.End != nil || p.PartID != "P1" {
		t.Errorf("params %+v", p)
	}
	cfg := &scorex.SliceConfig{}
	for _, opt := range f.sliceOpts() {
		opt(cfg)
	}
	if !cfg.AllowMissingPart || cfg.PartID != "P1" || *cfg.Start != 3 {
		t.Errorf("slice config %+v", cfg)
	}
}

func TestExcerptXMLPath(t *testing.T) {
	tests := []struct {
		cfg  ExcerptConfig
		want string
	}{
		{ExcerptConfig{}, ""},
		{ExcerptConfig{XML: "out.xml", SVG: "a.svg"}, "out.xml"},
		{ExcerptConfig{SVG: "dir/a.svg"}, "dir/a.musicxml"},
		{ExcerptConfig{PNG: "a.png"}, "a.musicxml"},
		{ExcerptConfig{SVG: "a.svg", PNG: "b.png"}, "a.musicxml"},
	}
	for _, tt := range tests {
		if got := tt.cfg.xmlPath(); got != tt.want {
			t.Errorf("xmlPath(%+v) = %q, want %q", tt.cfg, got, tt.want)
		}
	}
}

func TestEncodeOptsTabs(t *testing.T) {
	doc, err := parse.ParseString("<a><b/></a>")
	if err != nil {
		t.Fatal(err)
	}
	for _, tabs := range []bool{false, true} {
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(doc, buf, encodeOpts(tabs)...); err != nil {
			t.Fatal(err)
		}
		if got := strings.Contains(buf.String(), "\t<b/>"); got != tabs {
			t.Errorf("tabs=%t:\n%q", tabs, buf.String())
		}
	}
}

func TestReadDoc(t *testing.T) {
	const score = `<score-partwise version="4.0"><part id="P1"/></score-partwise>`
	buf := bytes.NewBuffer(nil)
	zw := zip.NewWriter(buf)
	w, err := zw.Create("score.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(score)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	for name, in := range map[string][]byte{"xml": []byte(score), "mxl": buf.Bytes()} {
		doc, err := readDoc(context.Background(), bytes.NewReader(in))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got := doc.RootElement().Find("part"); len(got) != 1 {
			t.Errorf("%s: %d parts", name, len(got))
		}
	}
	if _, err := readDoc(context.Background(), strings.NewReader("<score-partwise x=1/>")); !errors.Is(err, parse.ErrParse) {
		t.Errorf("got %v, want ErrParse", err)
	}
}

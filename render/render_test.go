package render

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const rect = `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="10" viewBox="0 0 20 10">
<rect x="0" y="0" width="20" height="10" fill="#ff0000"/>
</svg>`

func TestVerovioArgs(t *testing.T) {
	got := DefaultOptions().VerovioArgs()
	want := []string{
		"--input-from", "musicxml",
		"--to", "svg",
		"--header", "none",
		"--footer", "none",
		"--page-margin-top", "0",
		"--page-margin-right", "0",
		"--page-margin-bottom", "0",
		"--page-margin-left", "0",
		"--scale", "100",
		"--page-width", "2100",
		"--adjust-page-height",
		"--page", "1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("args (-want +got):\n%s", diff)
	}
	opts := Options{Header: true, Margins: Margins{Left: 50}}
	args := strings.Join(opts.VerovioArgs(), " ")
	for _, s := range []string{"--header auto", "--page-margin-left 50", "--page 1"} {
		if !strings.Contains(args, s) {
			t.Errorf("missing %q in %s", s, args)
		}
	}
	if strings.Contains(args, "--scale") || strings.Contains(args, "--adjust-page-height") {
		t.Errorf("unexpected defaults in %s", args)
	}
}

func TestCheckSVG(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"rect", rect, true},
		{"text", "verovio: error", false},
		{"broken", "<svg><g></svg>", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSVG([]byte(tt.in))
			if tt.ok && err != nil {
				t.Fatal(err)
			}
			if !tt.ok && !errors.Is(err, ErrRender) {
				t.Fatalf("expected ErrRender, got %v", err)
			}
		})
	}
}

func TestRasterize(t *testing.T) {
	img, err := Rasterize([]byte(rect), 40)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Fatalf("bounds %v", b)
	}
	r, g, b, _ := img.At(20, 10).RGBA()
	if r>>8 < 200 || g>>8 > 50 || b>>8 > 50 {
		t.Errorf("center pixel %d %d %d", r>>8, g>>8, b>>8)
	}
	if _, err := Rasterize([]byte(rect), 0); !errors.Is(err, ErrRender) {
		t.Errorf("expected ErrRender for zero width, got %v", err)
	}

	buf := bytes.NewBuffer(nil)
	if err := WritePNG(buf, []byte(rect), 10); err != nil {
		t.Fatal(err)
	}
	dec, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := dec.Bounds(); b.Dx() != 10 || b.Dy() != 5 {
		t.Errorf("png bounds %v", b)
	}
}

// script writes an executable shell script standing in for verovio.
func script(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	p := filepath.Join(t.TempDir(), "verovio")
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestVerovio(t *testing.T) {
	path := script(t, "cat <<'EOF'\n"+rect+"\nEOF\n")
	v := NewVerovio(path, nil)
	svg, err := v.Render(context.Background(), []byte("<score-partwise/>"), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("<rect")) {
		t.Errorf("unexpected output %s", svg)
	}
}

func TestVerovioInput(t *testing.T) {
	// the input file is the last argument
	path := script(t, "for a; do last=$a; done\ngrep -q '<score-partwise/>' \"$last\" || exit 3\ncat <<'EOF'\n"+rect+"\nEOF\n")
	v := &Verovio{Path: path}
	if _, err := v.Render(context.Background(), []byte("<score-partwise/>"), DefaultOptions()); err != nil {
		t.Fatal(err)
	}
}

func TestVerovioErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"exit", "echo 'cannot parse input' >&2\nexit 1\n"},
		{"not svg", "echo 'nothing here'\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVerovio(script(t, tt.body), nil)
			_, err := v.Render(context.Background(), []byte("<score-partwise/>"), DefaultOptions())
			if !errors.Is(err, ErrRender) {
				t.Fatalf("expected ErrRender, got %v", err)
			}
		})
	}
	v := NewVerovio(filepath.Join(t.TempDir(), "missing"), nil)
	if _, err := v.Render(context.Background(), nil, DefaultOptions()); !errors.Is(err, ErrRender) {
		t.Errorf("expected ErrRender for missing engine, got %v", err)
	}
}

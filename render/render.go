package render

import (
	"context"
	"errors"
	"strconv"
)

var ErrRender = errors.New("render error")

// Renderer produces the SVG of one page of a MusicXML document.
type Renderer interface {
	Render(ctx context.Context, xml []byte, opts Options) ([]byte, error)
}

type Margins struct {
	Top, Right, Bottom, Left int
}

// Options is the page layout record handed to the engine.
type Options struct {
	Scale            int
	PageWidth        int
	Page             int
	Header           bool
	Footer           bool
	AdjustPageHeight bool
	Margins          Margins
}

// DefaultOptions are the engraving settings for excerpts: no header or
// footer, page height fitted to the content, no margins and default
// scale.
func DefaultOptions() Options {
	return Options{
		Scale:            100,
		PageWidth:        2100,
		Page:             1,
		AdjustPageHeight: true,
	}
}

// VerovioArgs returns the verovio command line flags for o.
func (o Options) VerovioArgs() []string {
	onOff := func(v bool) string {
		if v {
			return "auto"
		}
		return "none"
	}
	args := []string{
		"--input-from", "musicxml",
		"--to", "svg",
		"--header", onOff(o.Header),
		"--footer", onOff(o.Footer),
		"--page-margin-top", strconv.Itoa(o.Margins.Top),
		"--page-margin-right", strconv.Itoa(o.Margins.Right),
		"--page-margin-bottom", strconv.Itoa(o.Margins.Bottom),
		"--page-margin-left", strconv.Itoa(o.Margins.Left),
	}
	if o.Scale > 0 {
		args = append(args, "--scale", strconv.Itoa(o.Scale))
	}
	if o.PageWidth > 0 {
		args = append(args, "--page-width", strconv.Itoa(o.PageWidth))
	}
	if o.AdjustPageHeight {
		args = append(args, "--adjust-page-height")
	}
	page := o.Page
	if page <= 0 {
		page = 1
	}
	return append(args, "--page", strconv.Itoa(page))
}

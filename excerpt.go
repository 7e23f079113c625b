package scorex

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/signadot/scorex/encode"
	"github.com/signadot/scorex/parse"
	"github.com/signadot/scorex/render"
)

// SliceParams are the user facing parameters of an excerpt.
type SliceParams struct {
	Start, End *int
	PartID     string
	Staff      int
	Carry      bool
}

// SliceOptions converts p to slicer options.
func (p SliceParams) SliceOptions() []SliceOption {
	var res []SliceOption
	if p.Start != nil {
		res = append(res, StartMeasure(*p.Start))
	}
	if p.End != nil {
		res = append(res, EndMeasure(*p.End))
	}
	if p.PartID != "" {
		res = append(res, Part(p.PartID))
	}
	if p.Staff > 0 {
		res = append(res, Staff(p.Staff))
	}
	if p.Carry {
		res = append(res, CarryAttributes(true))
	}
	return res
}

// ExcerptOptions returns the optimizer options used for excerpts cut
// with p: positioning is reset, dynamics are aligned and part groups
// are removed when a single part or staff is extracted.
func ExcerptOptions(p SliceParams) []OptimizeOption {
	return []OptimizeOption{
		ResetPositioning(true),
		AlignDynamics(true),
		RemovePartGroups(p.PartID != "" || p.Staff > 0),
	}
}

// Excerpt runs parse, slice, optimize, encode and, when Renderer is set,
// render on a source document.
type Excerpt struct {
	Parse         []parse.ParseOption
	Slice         []SliceOption
	Optimize      []OptimizeOption
	Encode        []encode.EncodeOption
	Renderer      render.Renderer
	RenderOptions render.Options
	Logger        *slog.Logger
}

type Result struct {
	XML []byte
	SVG []byte
}

// NewExcerpt sets up an excerpt for p with the given policy.
func NewExcerpt(p SliceParams, policy *Policy, renderer render.Renderer) *Excerpt {
	return &Excerpt{
		Slice:         p.SliceOptions(),
		Optimize:      append(ExcerptOptions(p), WithPolicy(policy)),
		Encode:        []encode.EncodeOption{encode.EncodeIndent(2), encode.EncodeDeclaration(true)},
		Renderer:      renderer,
		RenderOptions: render.DefaultOptions(),
	}
}

func (x *Excerpt) logger() *slog.Logger {
	if x.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return x.Logger
}

func (x *Excerpt) Run(ctx context.Context, src []byte) (*Result, error) {
	logger := x.logger()
	start := time.Now()
	doc, err := parse.Parse(src, x.Parse...)
	if err != nil {
		return nil, err
	}
	if err := Slice(doc, x.Slice...); err != nil {
		return nil, err
	}
	if err := Optimize(doc, x.Optimize...); err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, x.Encode...); err != nil {
		return nil, err
	}
	res := &Result{XML: buf.Bytes()}
	logger.Debug("excerpt prepared",
		"in_bytes", len(src),
		"out_bytes", len(res.XML),
		"elapsed", time.Since(start))
	if x.Renderer == nil {
		return res, nil
	}
	svg, err := x.Renderer.Render(ctx, res.XML, x.RenderOptions)
	if err != nil {
		return nil, err
	}
	res.SVG = svg
	logger.Debug("excerpt rendered", "svg_bytes", len(svg), "elapsed", time.Since(start))
	return res, nil
}

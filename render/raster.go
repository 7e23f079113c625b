package render

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// CheckSVG verifies that svg is a parseable SVG document.
func CheckSVG(svg []byte) error {
	if !bytes.Contains(svg, []byte("<svg")) {
		return fmt.Errorf("%w: output is not svg", ErrRender)
	}
	if _, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.IgnoreErrorMode); err != nil {
		return fmt.Errorf("%w: invalid svg: %w", ErrRender, err)
	}
	return nil
}

// Rasterize draws svg on a white image width pixels wide, keeping the
// aspect ratio of its view box. Only the SVG subset understood by oksvg
// is drawn, which is enough for previews.
func Rasterize(svg []byte, width int) (*image.RGBA, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width must be positive, got %d", ErrRender, width)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid svg: %w", ErrRender, err)
	}
	vb := icon.ViewBox
	if vb.W <= 0 || vb.H <= 0 {
		return nil, fmt.Errorf("%w: svg has no view box", ErrRender)
	}
	height := int(math.Ceil(float64(width) * vb.H / vb.W))
	icon.SetTarget(0, 0, float64(width), float64(height))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)
	return img, nil
}

func WritePNG(w io.Writer, svg []byte, width int) error {
	img, err := Rasterize(svg, width)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}

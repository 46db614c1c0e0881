package render

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"golang.org/x/image/vector"

	"github.com/utensils/hexalith/pkg/color"
	"github.com/utensils/hexalith/pkg/logo"
)

// PNGOption configures [RenderPNG].
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	background *color.RGBA
}

// WithPNGBackground fills the canvas with an opaque hex color first.
func WithPNGBackground(hex string) PNGOption {
	return func(r *pngRenderer) {
		if c, err := color.ParseHex(hex); err == nil {
			r.background = &c
		}
	}
}

// RenderPNG rasterizes the logo at the given scale (1.0 = canvas size).
// Single-claimed cells are painted with their shape's fill, overlapping
// cells with their precomputed blend, all composited over transparent.
func RenderPNG(l *logo.Logo, scale float64, opts ...PNGOption) ([]byte, error) {
	var r pngRenderer
	for _, opt := range opts {
		opt(&r)
	}
	if !(scale > 0) {
		return nil, fmt.Errorf("png scale must be positive, got %v", scale)
	}

	w := int(l.Width*scale + 0.5)
	h := int(l.Height*scale + 0.5)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if r.background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(r.background.NRGBA()), image.Point{}, draw.Src)
	}

	for _, grp := range cellGroups(l) {
		z := vector.NewRasterizer(w, h)
		z.DrawOp = draw.Over
		for _, poly := range grp.polys {
			for i, p := range poly {
				x, y := float32(p.X*scale), float32(p.Y*scale)
				if i == 0 {
					z.MoveTo(x, y)
				} else {
					z.LineTo(x, y)
				}
			}
			z.ClosePath()
		}
		z.Draw(dst, dst.Bounds(), image.NewUniform(grp.color.NRGBA()), image.Point{})
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

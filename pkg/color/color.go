// Package color assigns palette colors to shapes and composites the cells
// that several shapes claim.
//
// Colors are non-premultiplied float RGBA built on go-colorful. Overlaps
// are resolved with Porter-Duff "source over" in generation order:
//
//	out.A   = src.A + dst.A*(1-src.A)
//	out.RGB = (src.RGB*src.A + dst.RGB*dst.A*(1-src.A)) / out.A
package color

import (
	"fmt"
	imgcolor "image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a non-premultiplied color with alpha, all channels in [0, 1].
type RGBA struct {
	colorful.Color
	A float64
}

// Transparent is fully transparent black.
var Transparent = RGBA{}

// ParseHex parses "#RRGGBB" into an opaque color.
func ParseHex(s string) (RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return RGBA{Color: c, A: 1}, nil
}

// MustHex is ParseHex for static tables.
func MustHex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Over composites c on top of dst.
func (c RGBA) Over(dst RGBA) RGBA {
	a := c.A + dst.A*(1-c.A)
	if a <= 0 {
		return Transparent
	}
	k := dst.A * (1 - c.A)
	mix := func(s, d float64) float64 { return (s*c.A + d*k) / a }
	return RGBA{
		Color: colorful.Color{R: mix(c.R, dst.R), G: mix(c.G, dst.G), B: mix(c.B, dst.B)},
		A:     a,
	}
}

// Composite layers colors at a common opacity over a transparent base, first
// color at the bottom.
func Composite(colors []RGBA, opacity float64) RGBA {
	out := Transparent
	for _, c := range colors {
		out = c.WithAlpha(opacity).Over(out)
	}
	return out
}

// Hex returns "#rrggbb", ignoring alpha.
func (c RGBA) Hex() string { return c.Color.Clamped().Hex() }

// NRGBA converts to the standard library's color model.
func (c RGBA) NRGBA() imgcolor.NRGBA {
	r, g, b := c.Color.Clamped().RGB255()
	return imgcolor.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(c.A) * 255))}
}

// String returns "#rrggbb@alpha".
func (c RGBA) String() string { return fmt.Sprintf("%s@%.3g", c.Hex(), c.A) }

// Distance returns the CIEDE2000 perceptual distance between the opaque
// colors.
func Distance(a, b RGBA) float64 { return a.Color.DistanceCIEDE2000(b.Color) }

func clamp01(v float64) float64 { return math.Max(0, math.Min(1, v)) }

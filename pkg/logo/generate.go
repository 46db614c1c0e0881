package logo

import (
	"fmt"
	"time"

	"github.com/utensils/hexalith/pkg/color"
	"github.com/utensils/hexalith/pkg/geom"
	"github.com/utensils/hexalith/pkg/grid"
	"github.com/utensils/hexalith/pkg/jitter"
	"github.com/utensils/hexalith/pkg/palette"
	"github.com/utensils/hexalith/pkg/seed"
	"github.com/utensils/hexalith/pkg/shape"
)

// Generate runs the full pipeline for p. Defaults are applied to a copy;
// the resolved parameters are available on the result.
func Generate(p Params) (*Logo, error) {
	start := time.Now()
	if err := p.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	theme, err := palette.Parse(p.Theme)
	if err != nil {
		return nil, err
	}

	src, err := seed.Derive(p.Seed, p.UUID)
	if err != nil {
		return nil, err
	}
	rng := src.Stream()

	w, h := float64(p.Width), float64(p.Height)
	g, err := grid.Build(p.Density, min(w, h)/2)
	if err != nil {
		return nil, err
	}

	shapes, gs, err := shape.Grow(g, rng, shape.Config{
		Count:      p.Shapes,
		Overlap:    p.OverlapValue(),
		Candidates: p.Candidates,
	})
	if err != nil {
		return nil, fmt.Errorf("grow shapes: %w", err)
	}

	colors, err := color.Assign(g, shapes, theme, p.OpacityValue(), rng)
	if err != nil {
		return nil, fmt.Errorf("assign colors: %w", err)
	}

	var field *jitter.Field
	if p.Jitter {
		field = jitter.New(jitter.Config{Epsilon: p.JitterEpsilon})
	}

	l := &Logo{
		Seed:       src.Seed,
		SeedOrigin: src.Origin,
		Params:     p,
		Theme:      theme,
		Width:      w,
		Height:     h,
		Center:     geom.Point{X: w / 2, Y: h / 2},
		Radius:     g.Radius,
		Grid:       g,
	}
	pl := placer{g: g, center: l.Center, field: field}

	l.Boundary = pl.ring(g.Boundary)
	l.Shapes = make([]Shape, len(shapes))
	for i, s := range shapes {
		out := Shape{
			Order:    s.Order,
			Cells:    s.Cells,
			Variant:  s.Variant.String(),
			Color:    colors.Base[i],
			Fill:     colors.Fills[i],
			Polygons: make([]geom.Polygon, len(s.Cells)),
		}
		for k, c := range s.Cells {
			out.Polygons[k] = pl.cell(c)
		}
		for _, r := range g.Outline(s.Cells) {
			out.Outline = append(out.Outline, pl.ring(r))
		}
		l.Shapes[i] = out
	}
	l.Blends = make([]Blend, len(colors.Blends))
	for i, b := range colors.Blends {
		l.Blends[i] = Blend{Cell: b.Cell, Shapes: b.Shapes, Color: b.Color, Polygon: pl.cell(b.Cell)}
	}

	l.Stats = Stats{
		Cells:    g.Len(),
		Retries:  gs.Retries,
		Grown:    gs.Grown,
		Shrunk:   gs.Shrunk,
		Fallback: colors.Fallback,
		Draws:    rng.Draws(),
		Jittered: field.Len(),
		Duration: time.Since(start),
	}
	return l, nil
}

// placer maps grid space (origin-centered, y up) to canvas space
// (top-left origin, y down), applying jitter per canonical vertex.
type placer struct {
	g      *grid.Grid
	center geom.Point
	field  *jitter.Field
}

func (pl placer) point(p geom.Point) geom.Point {
	q := geom.Point{X: pl.center.X + p.X, Y: pl.center.Y - p.Y}
	if pl.field == nil {
		return q
	}
	return pl.field.Apply(grid.KeyOf(p, pl.g.Spacing), q)
}

func (pl placer) ring(r geom.Polygon) geom.Polygon {
	out := make(geom.Polygon, len(r))
	for i, p := range r {
		out[i] = pl.point(p)
	}
	return out
}

func (pl placer) cell(c int) geom.Polygon {
	return pl.ring(pl.g.Cells[c].Polygon())
}

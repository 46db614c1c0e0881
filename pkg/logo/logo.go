// Package logo generates a complete logo: it validates parameters, derives
// the seed, builds the grid, grows shapes, assigns colors and lays the
// result out in canvas coordinates.
//
//	l, err := logo.Generate(logo.Params{Seed: logo.Uint64(12345)})
//	for _, s := range l.Shapes {
//	    fmt.Println(s.Fill.Hex(), len(s.Cells))
//	}
//
// Everything but jitter is a pure function of the seed and parameters.
package logo

import (
	"time"

	"github.com/utensils/hexalith/pkg/color"
	"github.com/utensils/hexalith/pkg/geom"
	"github.com/utensils/hexalith/pkg/grid"
	"github.com/utensils/hexalith/pkg/palette"
	"github.com/utensils/hexalith/pkg/seed"
)

// Logo is the output of a generation run. Coordinates are canvas
// coordinates: origin top-left, y down.
type Logo struct {
	Seed       uint64        `json:"seed"`
	SeedOrigin seed.Origin   `json:"seed_origin"`
	Params     Params        `json:"params"`
	Theme      palette.Theme `json:"theme"`
	Width      float64       `json:"width"`
	Height     float64       `json:"height"`
	Center     geom.Point    `json:"center"`
	Radius     float64       `json:"radius"`
	Boundary   geom.Polygon  `json:"boundary"`
	Shapes     []Shape       `json:"shapes"`
	Blends     []Blend       `json:"blends"`
	Stats      Stats         `json:"stats"`

	Grid *grid.Grid `json:"-"`
}

// Shape is a placed, colored shape. Shapes are listed in z-order.
type Shape struct {
	Order    int            `json:"order"`
	Cells    []int          `json:"cells"`
	Variant  string         `json:"variant"`
	Color    color.RGBA     `json:"-"`
	Fill     color.RGBA     `json:"-"`
	Polygons []geom.Polygon `json:"-"` // one triangle per cell, same order as Cells
	Outline  []geom.Polygon `json:"-"` // merged boundary rings
}

// Blend is a placed cell claimed by more than one shape.
type Blend struct {
	Cell    int          `json:"cell"`
	Shapes  []int        `json:"shapes"`
	Color   color.RGBA   `json:"-"`
	Polygon geom.Polygon `json:"-"`
}

// Stats records how the run went.
type Stats struct {
	Cells    int           `json:"cells"`
	Retries  []int         `json:"retries"`
	Grown    int           `json:"candidates_grown"`
	Shrunk   int           `json:"shrunk"`
	Fallback int           `json:"palette_fallbacks"`
	Draws    int           `json:"draws"`
	Jittered int           `json:"jittered_vertices,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// Deterministic reports whether regenerating with the same parameters
// reproduces this logo exactly.
func (l *Logo) Deterministic() bool { return !l.Params.Jitter }

// Replay returns parameters that reproduce this logo, with the resolved
// seed pinned and the UUID dropped.
func (l *Logo) Replay() Params {
	p := l.Params
	p.UUID = ""
	p.Seed = Uint64(l.Seed)
	return p
}

// Cells returns the number of claimed cells, counting each once.
func (l *Logo) Cells() int {
	seen := make(map[int]bool)
	for _, s := range l.Shapes {
		for _, c := range s.Cells {
			seen[c] = true
		}
	}
	return len(seen)
}

// CellColor returns the resolved color of cell c: the blend for
// multiply-claimed cells, the owning shape's fill otherwise.
func (l *Logo) CellColor(c int) (color.RGBA, bool) {
	for _, b := range l.Blends {
		if b.Cell == c {
			return b.Color, true
		}
	}
	for _, s := range l.Shapes {
		for _, sc := range s.Cells {
			if sc == c {
				return s.Fill, true
			}
		}
	}
	return color.RGBA{}, false
}

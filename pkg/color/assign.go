package color

import (
	"math"
	"slices"

	"github.com/utensils/hexalith/pkg/errors"
	"github.com/utensils/hexalith/pkg/grid"
	"github.com/utensils/hexalith/pkg/palette"
	"github.com/utensils/hexalith/pkg/seed"
	"github.com/utensils/hexalith/pkg/shape"
)

// Blend is the composited color of a cell claimed by several shapes.
type Blend struct {
	Cell   int
	Shapes []int // claiming shapes, generation order
	Color  RGBA
}

// Assignment is the color outcome of a run.
type Assignment struct {
	Base     []RGBA // opaque palette color per shape
	Fills    []RGBA // Base at the requested opacity
	Palette  []int  // palette index per shape
	Blends   []Blend
	Fallback int // shapes colored by distance because the palette ran out
}

// Assign picks a palette color for each shape, avoiding colors of shapes
// that touch it, then composites every multiply-claimed cell.
//
// Candidates are the palette entries not used by touching shapes, narrowed
// to entries unused by any shape so far when that leaves something. One is
// drawn from rng. With no candidate left the entry farthest (CIEDE2000) from
// the touching shapes' colors is used; ties go to the lower palette index.
func Assign(g *grid.Grid, shapes []shape.Shape, theme palette.Theme, opacity float64, rng *seed.Stream) (Assignment, error) {
	if err := errors.ValidateFloatRange("opacity", opacity, 0, 1); err != nil {
		return Assignment{}, err
	}
	if !theme.Valid() {
		return Assignment{}, errors.InvalidParameter("theme", "one of the built-in themes", theme)
	}
	table := make([]RGBA, 0, theme.Len())
	for _, h := range theme.Colors() {
		c, err := ParseHex(h)
		if err != nil {
			return Assignment{}, errors.Wrap(errors.ErrCodeInternal, err, "theme %s", theme)
		}
		table = append(table, c)
	}

	n := len(shapes)
	out := Assignment{
		Base:    make([]RGBA, n),
		Fills:   make([]RGBA, n),
		Palette: make([]int, n),
	}
	touching := neighbors(g, shapes)
	used := make([]bool, len(table))

	for i := range shapes {
		blocked := make([]bool, len(table))
		var near []RGBA
		for _, j := range touching[i] {
			if j < i {
				blocked[out.Palette[j]] = true
				near = append(near, out.Base[j])
			}
		}

		var free, fresh []int
		for k := range table {
			if blocked[k] {
				continue
			}
			free = append(free, k)
			if !used[k] {
				fresh = append(fresh, k)
			}
		}
		if len(fresh) > 0 {
			free = fresh
		}

		var pick int
		if len(free) > 0 {
			pick = free[rng.IntN(len(free))]
		} else {
			pick = farthest(table, near)
			out.Fallback++
		}

		used[pick] = true
		out.Palette[i] = pick
		out.Base[i] = table[pick]
		out.Fills[i] = table[pick].WithAlpha(opacity)
	}

	out.Blends = blends(shapes, out.Base, opacity)
	return out, nil
}

// neighbors lists, for each shape, the shapes it touches, ascending.
func neighbors(g *grid.Grid, shapes []shape.Shape) [][]int {
	out := make([][]int, len(shapes))
	for i := range shapes {
		for j := i + 1; j < len(shapes); j++ {
			if shape.Touching(g, shapes[i], shapes[j]) {
				out[i] = append(out[i], j)
				out[j] = append(out[j], i)
			}
		}
	}
	for i := range out {
		slices.Sort(out[i])
	}
	return out
}

func farthest(table, near []RGBA) int {
	best, bestD := 0, -1.0
	for k, c := range table {
		d := math.Inf(1)
		for _, o := range near {
			d = min(d, Distance(c, o))
		}
		if d > bestD {
			best, bestD = k, d
		}
	}
	return best
}

func blends(shapes []shape.Shape, base []RGBA, opacity float64) []Blend {
	owners := shape.Owners(shapes)
	cells := make([]int, 0, len(owners))
	for c, o := range owners {
		if len(o) > 1 {
			cells = append(cells, c)
		}
	}
	slices.Sort(cells)

	out := make([]Blend, 0, len(cells))
	for _, c := range cells {
		order := owners[c]
		layers := make([]RGBA, len(order))
		for k, s := range order {
			layers[k] = base[s]
		}
		out = append(out, Blend{Cell: c, Shapes: order, Color: Composite(layers, opacity)})
	}
	return out
}

// CellColor returns the composited color of cell c, or false when no shape
// claims it.
func (a Assignment) CellColor(shapes []shape.Shape, c int) (RGBA, bool) {
	i, ok := slices.BinarySearchFunc(a.Blends, c, func(b Blend, c int) int { return b.Cell - c })
	if ok {
		return a.Blends[i].Color, true
	}
	for k, s := range shapes {
		if s.Contains(c) {
			return a.Fills[k], true
		}
	}
	return RGBA{}, false
}

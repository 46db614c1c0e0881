// Package shape grows the connected cell sets that make up a logo.
//
// Shapes are grown one at a time from the shared stream. Each shape starts
// at the most central available cell and expands across edge-sharing
// neighbors. For every shape several candidates are grown and scored, and
// the best one is kept. When the grid runs out of room the target size is
// shrunk, deterministically, instead of failing the run.
package shape

import (
	"slices"

	"github.com/utensils/hexalith/pkg/grid"
)

// Variant selects the growth heuristic used for a candidate.
type Variant uint8

const (
	// Directional biases growth along a random heading, giving jagged,
	// elongated outlines.
	Directional Variant = iota
	// BreadthFirst expands ring by ring around the start cell, giving
	// rounder shapes.
	BreadthFirst
	// SimpleBoundary favors cells that close concavities and keep away from
	// cells earlier shapes have claimed.
	SimpleBoundary
)

// Variants lists every growth variant.
var Variants = []Variant{Directional, BreadthFirst, SimpleBoundary}

func (v Variant) String() string {
	switch v {
	case Directional:
		return "directional"
	case BreadthFirst:
		return "breadth-first"
	case SimpleBoundary:
		return "simple-boundary"
	}
	return "unknown"
}

// Shape is a connected, non-empty set of grid cells.
type Shape struct {
	Order   int     // generation order, also the z-order
	Cells   []int   // ascending cell indices
	Variant Variant // heuristic of the winning candidate
	Target  int     // requested size after any shrinking
	Score   float64 // lower is better
}

// Len returns the number of cells.
func (s Shape) Len() int { return len(s.Cells) }

// Contains reports whether cell c belongs to the shape.
func (s Shape) Contains(c int) bool {
	_, ok := slices.BinarySearch(s.Cells, c)
	return ok
}

// Connected reports whether cells form a single edge-connected component.
func Connected(g *grid.Grid, cells []int) bool {
	if len(cells) == 0 {
		return false
	}
	in := make(map[int]bool, len(cells))
	for _, c := range cells {
		in[c] = true
	}
	return len(g.Component(cells[0], func(c int) bool { return in[c] })) == len(in)
}

// Touching reports whether two shapes share a cell or an edge.
func Touching(g *grid.Grid, a, b Shape) bool {
	for _, c := range a.Cells {
		if b.Contains(c) {
			return true
		}
		for _, n := range g.Neighbors(c) {
			if b.Contains(n) {
				return true
			}
		}
	}
	return false
}

// Disjoint reports whether no cell is claimed by more than one shape.
func Disjoint(shapes []Shape) bool {
	seen := make(map[int]bool)
	for _, s := range shapes {
		for _, c := range s.Cells {
			if seen[c] {
				return false
			}
			seen[c] = true
		}
	}
	return true
}

// Owners maps each claimed cell to the shapes claiming it, in generation
// order.
func Owners(shapes []Shape) map[int][]int {
	out := make(map[int][]int)
	for _, s := range shapes {
		for _, c := range s.Cells {
			out[c] = append(out[c], s.Order)
		}
	}
	return out
}

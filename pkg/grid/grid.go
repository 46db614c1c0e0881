package grid

import (
	"slices"

	"github.com/utensils/hexalith/pkg/errors"
	"github.com/utensils/hexalith/pkg/geom"
)

// Density bounds accepted by [Build].
const (
	MinDensity = 2
	MaxDensity = 8
)

// CellCount returns the number of cells in a density-n grid.
func CellCount(n int) int { return 6 * n * n }

// Orientation tells whether a cell's apex points along +y or -y in the
// grid's y-up frame.
type Orientation uint8

const (
	Up Orientation = iota
	Down
)

func (o Orientation) String() string {
	if o == Up {
		return "up"
	}
	return "down"
}

// Cell is one equilateral triangle of the grid.
type Cell struct {
	Index       int
	Vertices    [3]geom.Point // counter-clockwise
	Centroid    geom.Point
	Orientation Orientation
	Wedge       int   // 0..5, the sector the cell was generated in
	Rank        int   // center-distance tier, 0 is innermost
	Neighbors   []int // edge-sharing cells, ascending
}

// Polygon returns the cell's vertices as a polygon.
func (c Cell) Polygon() geom.Polygon {
	return geom.Polygon{c.Vertices[0], c.Vertices[1], c.Vertices[2]}
}

// Edge is an adjacency between two cells, A < B.
type Edge struct{ A, B int }

// Grid is an immutable triangulated hexagon.
type Grid struct {
	Density  int
	Radius   float64
	Spacing  float64 // lattice spacing, Radius / Density
	Cells    []Cell
	Boundary geom.Polygon

	keys    [][3]Key
	edges   []Edge
	byRank  []int
	maxRank int
}

// Build constructs and verifies a grid of the given density centered at
// the origin with circumradius radius.
func Build(density int, radius float64) (*Grid, error) {
	if err := errors.ValidateIntRange("grid_density", density, MinDensity, MaxDensity); err != nil {
		return nil, err
	}
	if err := errors.ValidatePositive("radius", radius); err != nil {
		return nil, err
	}

	s := radius / float64(density)
	tris := triangles(density)
	g := &Grid{
		Density:  density,
		Radius:   radius,
		Spacing:  s,
		Cells:    make([]Cell, len(tris)),
		Boundary: geom.Hexagon(geom.Point{}, radius),
		keys:     make([][3]Key, len(tris)),
	}

	for i, t := range tris {
		c := Cell{Index: i, Wedge: t.wedge, Orientation: Down}
		if t.up() {
			c.Orientation = Up
		}
		for k, v := range t.v {
			c.Vertices[k] = v.point(s)
			g.keys[i][k] = KeyOf(c.Vertices[k], s)
		}
		c.Centroid = c.Polygon().Centroid()
		g.Cells[i] = c
	}

	g.link()
	g.rank(tris)

	if err := g.verify(); err != nil {
		return nil, err
	}
	return g, nil
}

// link derives adjacency from shared canonical edges.
func (g *Grid) link() {
	owners := make(map[EdgeKey][]int, len(g.Cells)*2)
	for i := range g.Cells {
		for _, e := range g.cellEdges(i) {
			owners[e] = append(owners[e], i)
		}
	}
	for _, cells := range owners {
		if len(cells) != 2 {
			continue
		}
		a, b := cells[0], cells[1]
		g.Cells[a].Neighbors = append(g.Cells[a].Neighbors, b)
		g.Cells[b].Neighbors = append(g.Cells[b].Neighbors, a)
	}
	for i := range g.Cells {
		slices.Sort(g.Cells[i].Neighbors)
		for _, n := range g.Cells[i].Neighbors {
			if i < n {
				g.edges = append(g.edges, Edge{i, n})
			}
		}
	}
}

// rank assigns center-distance tiers from the exact squared centroid
// distance. Distinct distances are sorted and each cell gets the index of
// its tier.
func (g *Grid) rank(tris []triangle) {
	dist := make([]int, len(tris))
	for i, t := range tris {
		dist[i] = t.radius9()
	}
	tiers := slices.Clone(dist)
	slices.Sort(tiers)
	tiers = slices.Compact(tiers)

	for i := range g.Cells {
		r, _ := slices.BinarySearch(tiers, dist[i])
		g.Cells[i].Rank = r
	}
	g.maxRank = len(tiers) - 1

	g.byRank = make([]int, len(g.Cells))
	for i := range g.byRank {
		g.byRank[i] = i
	}
	slices.SortStableFunc(g.byRank, func(a, b int) int {
		return g.Cells[a].Rank - g.Cells[b].Rank
	})
}

func (g *Grid) verify() error {
	if want := CellCount(g.Density); len(g.Cells) != want {
		return errors.New(errors.ErrCodeGridConstruction, "density %d produced %d cells, want %d", g.Density, len(g.Cells), want)
	}
	for _, c := range g.Cells {
		if n := len(c.Neighbors); n < 1 || n > 3 {
			return errors.New(errors.ErrCodeGridConstruction, "cell %d has %d neighbors", c.Index, n)
		}
	}
	if reached := len(g.Component(0, nil)); reached != len(g.Cells) {
		return errors.New(errors.ErrCodeGridConstruction, "adjacency graph disconnected: reached %d of %d cells", reached, len(g.Cells))
	}
	return nil
}

func (g *Grid) cellEdges(i int) [3]EdgeKey {
	k := g.keys[i]
	return [3]EdgeKey{edgeKey(k[0], k[1]), edgeKey(k[1], k[2]), edgeKey(k[2], k[0])}
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.Cells) }

// Cell returns the cell at index i.
func (g *Grid) Cell(i int) Cell { return g.Cells[i] }

// Neighbors returns the edge-sharing neighbors of cell i in ascending order.
// The returned slice must not be modified.
func (g *Grid) Neighbors(i int) []int { return g.Cells[i].Neighbors }

// Adjacent reports whether cells a and b share an edge.
func (g *Grid) Adjacent(a, b int) bool {
	_, ok := slices.BinarySearch(g.Cells[a].Neighbors, b)
	return ok
}

// Edges returns every adjacency once, ordered by A then B.
func (g *Grid) Edges() []Edge { return g.edges }

// EdgeCount returns the number of adjacencies.
func (g *Grid) EdgeCount() int { return len(g.edges) }

// MaxRank returns the outermost rank tier.
func (g *Grid) MaxRank() int { return g.maxRank }

// ByRank returns all cell indices ordered by rank, then index.
func (g *Grid) ByRank() []int { return g.byRank }

// VertexKeys returns the canonical keys of cell i's vertices.
func (g *Grid) VertexKeys(i int) [3]Key { return g.keys[i] }

// Contains reports whether p lies inside the hexagon.
func (g *Grid) Contains(p geom.Point) bool {
	return g.Boundary.Contains(p, g.Spacing*1e-9)
}

// Component returns the cells reachable from start by breadth-first search,
// visiting only cells for which allow returns true (all cells when allow is
// nil). The result is in visit order.
func (g *Grid) Component(start int, allow func(int) bool) []int {
	if allow != nil && !allow(start) {
		return nil
	}
	seen := make([]bool, len(g.Cells))
	seen[start] = true
	queue := []int{start}
	for head := 0; head < len(queue); head++ {
		for _, n := range g.Cells[queue[head]].Neighbors {
			if seen[n] || (allow != nil && !allow(n)) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return queue
}

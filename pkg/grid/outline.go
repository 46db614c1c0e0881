package grid

import "github.com/utensils/hexalith/pkg/geom"

type halfEdge struct {
	from, to Key
	p        geom.Point // position of from
}

// boundary returns the half-edges of cells that are not shared by another
// cell of the set, in cell order. They keep the counter-clockwise winding of
// their cell, so outer boundaries wind counter-clockwise and holes clockwise.
func (g *Grid) boundary(cells []int) []halfEdge {
	count := make(map[EdgeKey]int, len(cells)*3)
	for _, c := range cells {
		for _, e := range g.cellEdges(c) {
			count[e]++
		}
	}
	var out []halfEdge
	for _, c := range cells {
		k := g.keys[c]
		for j := range 3 {
			a, b := k[j], k[(j+1)%3]
			if count[edgeKey(a, b)] == 1 {
				out = append(out, halfEdge{from: a, to: b, p: g.Cells[c].Vertices[j]})
			}
		}
	}
	return out
}

// Perimeter returns the number of unit edges on the boundary of a cell set.
func (g *Grid) Perimeter(cells []int) int {
	return len(g.boundary(cells))
}

// Outline chains the boundary of a cell set into closed rings. A connected
// set without holes yields a single counter-clockwise ring; holes come back
// as additional clockwise rings. Where the set pinches to a single vertex the
// rings are split there.
func (g *Grid) Outline(cells []int) []geom.Polygon {
	edges := g.boundary(cells)
	out := make(map[Key][]int, len(edges))
	for i, e := range edges {
		out[e.from] = append(out[e.from], i)
	}
	used := make([]bool, len(edges))

	var rings []geom.Polygon
	for start := range edges {
		if used[start] {
			continue
		}
		var ring geom.Polygon
		for cur := start; ; {
			used[cur] = true
			ring = append(ring, edges[cur].p)
			next := -1
			for _, cand := range out[edges[cur].to] {
				if !used[cand] {
					next = cand
					break
				}
			}
			if next < 0 {
				break
			}
			cur = next
		}
		rings = append(rings, ring)
	}
	return rings
}

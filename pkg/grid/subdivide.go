package grid

// subdivide walks the six wedges of a density-n hexagon. Wedge k spans the
// center and corners k, k+1; inside it P(i, j) = i·c[k] + j·c[k+1] for
// i+j ≤ n. Each wedge yields n(n+1)/2 upward and n(n-1)/2 downward
// triangles, all wound counter-clockwise.
func subdivide(n int) []triangle {
	out := make([]triangle, 0, CellCount(n))
	for k := range 6 {
		a, b := corners[k], corners[(k+1)%6]
		p := func(i, j int) lattice { return a.mul(i).add(b.mul(j)) }
		for i := 0; i < n; i++ {
			for j := 0; i+j < n; j++ {
				out = append(out, triangle{v: [3]lattice{p(i, j), p(i+1, j), p(i, j+1)}, wedge: k})
				if i+j <= n-2 {
					out = append(out, triangle{v: [3]lattice{p(i+1, j), p(i+1, j+1), p(i, j+1)}, wedge: k})
				}
			}
		}
	}
	return out
}

// canonical2 is the fixed density-2 layout: the six central triangles in
// corner order, then for each wedge its left outer, bridge and right outer
// triangle. Indices into this table are stable across releases.
var canonical2 = [24]triangle{
	{v: [3]lattice{{0, 0}, {1, 0}, {0, 1}}, wedge: 0},
	{v: [3]lattice{{0, 0}, {0, 1}, {-1, 1}}, wedge: 1},
	{v: [3]lattice{{0, 0}, {-1, 1}, {-1, 0}}, wedge: 2},
	{v: [3]lattice{{0, 0}, {-1, 0}, {0, -1}}, wedge: 3},
	{v: [3]lattice{{0, 0}, {0, -1}, {1, -1}}, wedge: 4},
	{v: [3]lattice{{0, 0}, {1, -1}, {1, 0}}, wedge: 5},

	{v: [3]lattice{{1, 0}, {2, 0}, {1, 1}}, wedge: 0},
	{v: [3]lattice{{1, 0}, {1, 1}, {0, 1}}, wedge: 0},
	{v: [3]lattice{{0, 1}, {1, 1}, {0, 2}}, wedge: 0},

	{v: [3]lattice{{0, 1}, {0, 2}, {-1, 2}}, wedge: 1},
	{v: [3]lattice{{0, 1}, {-1, 2}, {-1, 1}}, wedge: 1},
	{v: [3]lattice{{-1, 1}, {-1, 2}, {-2, 2}}, wedge: 1},

	{v: [3]lattice{{-1, 1}, {-2, 2}, {-2, 1}}, wedge: 2},
	{v: [3]lattice{{-1, 1}, {-2, 1}, {-1, 0}}, wedge: 2},
	{v: [3]lattice{{-1, 0}, {-2, 1}, {-2, 0}}, wedge: 2},

	{v: [3]lattice{{-1, 0}, {-2, 0}, {-1, -1}}, wedge: 3},
	{v: [3]lattice{{-1, 0}, {-1, -1}, {0, -1}}, wedge: 3},
	{v: [3]lattice{{0, -1}, {-1, -1}, {0, -2}}, wedge: 3},

	{v: [3]lattice{{0, -1}, {0, -2}, {1, -2}}, wedge: 4},
	{v: [3]lattice{{0, -1}, {1, -2}, {1, -1}}, wedge: 4},
	{v: [3]lattice{{1, -1}, {1, -2}, {2, -2}}, wedge: 4},

	{v: [3]lattice{{1, -1}, {2, -2}, {2, -1}}, wedge: 5},
	{v: [3]lattice{{1, -1}, {2, -1}, {1, 0}}, wedge: 5},
	{v: [3]lattice{{1, 0}, {2, -1}, {2, 0}}, wedge: 5},
}

func triangles(n int) []triangle {
	if n == 2 {
		out := make([]triangle, len(canonical2))
		copy(out, canonical2[:])
		return out
	}
	return subdivide(n)
}

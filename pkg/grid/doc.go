// Package grid builds the triangulated hexagon every logo is drawn on.
//
// A hexagon of circumradius R is split into six wedges around its center.
// Each wedge is subdivided into n² equilateral triangles, so a grid of
// density n holds exactly 6n² cells:
//
//	g, err := grid.Build(3, 256)
//	g.Len()            // 54
//	g.Neighbors(0)     // edge-sharing cells, ascending
//	g.Cells[0].Rank    // 0 for the innermost ring
//
// Cell vertices lie on a triangular lattice of spacing R/n. Adjacency is
// derived from canonical vertex keys (coordinates rounded to a fixed
// precision): two cells are neighbors when they share two keys, i.e. one
// full edge. Cells touching only at a corner are not neighbors.
//
// Density 2 uses a fixed canonical table rather than the generic
// wedge walk, so its 24-cell layout and indexing never change.
//
// Build verifies the result before returning it: cell count, 1 to 3
// neighbors per cell, and a connected adjacency graph. A violation is a
// GRID_CONSTRUCTION error and indicates a bug, not bad input.
package grid

// Package render turns a generated logo into output bytes.
//
// # Formats
//
//   - [RenderSVG]: one path per shape in z-order, drawn at the shape's fill
//     opacity so viewers composite overlaps themselves
//   - [RenderPNG]: native rasterizer that paints every cell with its
//     resolved color, using precomputed blends for overlapping cells
//   - [RenderJSON]: the logo model (seed, parameters, shapes, blends)
//   - [ToPDF] / [ToPNG]: any SVG converted with the external rsvg-convert
//
//	svg := render.RenderSVG(l, render.WithBackground("#ffffff"))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.RenderPNG(l, 2.0)
//
// # Grid Diagrams
//
// [GridDOT] describes the cell adjacency graph in Graphviz DOT, with cells
// pinned at their centroids and filled with their logo color when a logo is
// given. [RenderDOT] lays it out with Graphviz and returns SVG.
package render

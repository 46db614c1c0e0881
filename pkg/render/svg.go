package render

import (
	"bytes"
	"fmt"

	"github.com/utensils/hexalith/pkg/color"
	"github.com/utensils/hexalith/pkg/geom"
	"github.com/utensils/hexalith/pkg/logo"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background string
	boundary   string
	cells      bool
}

// WithBackground fills the canvas before drawing.
func WithBackground(c string) SVGOption { return func(r *svgRenderer) { r.background = c } }

// WithBoundary strokes the hexagon outline in the given color.
func WithBoundary(c string) SVGOption { return func(r *svgRenderer) { r.boundary = c } }

// WithCells draws every claimed cell with its resolved color instead of one
// translucent path per shape, matching [RenderPNG] exactly.
func WithCells() SVGOption { return func(r *svgRenderer) { r.cells = true } }

// RenderSVG draws the logo.
func RenderSVG(l *logo.Logo, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)
	fmt.Fprintf(&buf, "  <!-- hexalith seed=%d theme=%s grid=%d -->\n", l.Seed, l.Theme, l.Params.Density)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.background)
	}

	if r.cells {
		renderCells(&buf, l)
	} else {
		for _, s := range l.Shapes {
			fmt.Fprintf(&buf, `  <path class="shape" id="shape-%d" d="%s" fill="%s" fill-opacity="%s" fill-rule="nonzero"/>`+"\n",
				s.Order, pathData(s.Outline...), s.Fill.Hex(), fmtAlpha(s.Fill.A))
		}
	}

	if r.boundary != "" {
		fmt.Fprintf(&buf, `  <path class="boundary" d="%s" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
			pathData(l.Boundary), r.boundary)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderCells(buf *bytes.Buffer, l *logo.Logo) {
	for _, grp := range cellGroups(l) {
		fmt.Fprintf(buf, `  <path class="cells" d="%s" fill="%s" fill-opacity="%s"/>`+"\n",
			pathData(grp.polys...), grp.color.Hex(), fmtAlpha(grp.color.A))
	}
}

// pathData joins rings into SVG path data.
func pathData(rings ...geom.Polygon) string {
	var b bytes.Buffer
	for _, ring := range rings {
		for i, p := range ring {
			if i == 0 {
				fmt.Fprintf(&b, "M%.2f %.2f", p.X, p.Y)
			} else {
				fmt.Fprintf(&b, "L%.2f %.2f", p.X, p.Y)
			}
		}
		if len(ring) > 0 {
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func fmtAlpha(a float64) string { return fmt.Sprintf("%.3g", a) }

type cellGroup struct {
	color color.RGBA
	polys []geom.Polygon
}

// cellGroups buckets claimed cells by resolved color so each color is a
// single path; groups are ordered by their first cell.
func cellGroups(l *logo.Logo) []cellGroup {
	blended := make(map[int]bool, len(l.Blends))
	var groups []cellGroup
	index := make(map[color.RGBA]int)
	add := func(c color.RGBA, p geom.Polygon) {
		i, ok := index[c]
		if !ok {
			i = len(groups)
			index[c] = i
			groups = append(groups, cellGroup{color: c})
		}
		groups[i].polys = append(groups[i].polys, p)
	}

	for _, b := range l.Blends {
		blended[b.Cell] = true
	}
	placed := make(map[int]bool)
	for _, s := range l.Shapes {
		for k, c := range s.Cells {
			if blended[c] || placed[c] {
				continue
			}
			placed[c] = true
			add(s.Fill, s.Polygons[k])
		}
	}
	for _, b := range l.Blends {
		add(b.Color, b.Polygon)
	}
	return groups
}

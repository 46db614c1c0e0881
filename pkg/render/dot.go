package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/utensils/hexalith/pkg/grid"
	"github.com/utensils/hexalith/pkg/logo"
)

// dotScale converts grid units to Graphviz inches.
const dotScale = 1.0 / 36

// GridDOT describes the adjacency graph of g. Nodes are pinned at their
// centroids (y up, as Graphviz expects) and labeled with cell index and
// rank. When l is non-nil, claimed cells are filled with their resolved
// color.
func GridDOT(g *grid.Grid, l *logo.Logo) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10, width=0.3, fixedsize=true];\n")
	buf.WriteString("  edge [color=\"#999999\"];\n")
	buf.WriteString("\n")

	for _, c := range g.Cells {
		attrs := fmt.Sprintf("label=\"%d\\nr%d\", pos=\"%.3f,%.3f!\"", c.Index, c.Rank, c.Centroid.X*dotScale, c.Centroid.Y*dotScale)
		if l != nil {
			if col, ok := l.CellColor(c.Index); ok {
				attrs += fmt.Sprintf(", fillcolor=\"%s\"", col.Hex())
			}
		}
		fmt.Fprintf(&buf, "  c%d [%s];\n", c.Index, attrs)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  c%d -- c%d;\n", e.A, e.B)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOT lays out a DOT graph with Graphviz's neato engine, honoring
// pinned positions, and returns SVG.
func RenderDOT(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

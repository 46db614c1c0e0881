package render

import (
	"encoding/json"

	"github.com/utensils/hexalith/pkg/geom"
	"github.com/utensils/hexalith/pkg/logo"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	polygons bool
	indent   bool
}

// WithJSONPolygons includes every cell triangle, not just shape outlines.
func WithJSONPolygons() JSONOption { return func(r *jsonRenderer) { r.polygons = true } }

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

type jsonOutput struct {
	Seed       uint64       `json:"seed"`
	SeedOrigin string       `json:"seed_origin"`
	Theme      string       `json:"theme"`
	Params     logo.Params  `json:"params"`
	Width      float64      `json:"width"`
	Height     float64      `json:"height"`
	Center     geom.Point   `json:"center"`
	Radius     float64      `json:"radius"`
	Boundary   geom.Polygon `json:"boundary"`
	Shapes     []jsonShape  `json:"shapes"`
	Blends     []jsonBlend  `json:"blends"`
	Stats      logo.Stats   `json:"stats"`
}

type jsonShape struct {
	Order    int            `json:"order"`
	Variant  string         `json:"variant"`
	Color    string         `json:"color"`
	Opacity  float64        `json:"opacity"`
	Cells    []int          `json:"cells"`
	Outline  []geom.Polygon `json:"outline"`
	Polygons []geom.Polygon `json:"polygons,omitempty"`
}

type jsonBlend struct {
	Cell   int     `json:"cell"`
	Shapes []int   `json:"shapes"`
	Color  string  `json:"color"`
	Alpha  float64 `json:"alpha"`
}

// RenderJSON exports the logo model.
func RenderJSON(l *logo.Logo, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Seed:       l.Seed,
		SeedOrigin: string(l.SeedOrigin),
		Theme:      l.Theme.String(),
		Params:     l.Params,
		Width:      l.Width,
		Height:     l.Height,
		Center:     l.Center,
		Radius:     l.Radius,
		Boundary:   l.Boundary,
		Shapes:     make([]jsonShape, len(l.Shapes)),
		Blends:     make([]jsonBlend, len(l.Blends)),
		Stats:      l.Stats,
	}
	for i, s := range l.Shapes {
		js := jsonShape{
			Order:   s.Order,
			Variant: s.Variant,
			Color:   s.Color.Hex(),
			Opacity: s.Fill.A,
			Cells:   s.Cells,
			Outline: s.Outline,
		}
		if r.polygons {
			js.Polygons = s.Polygons
		}
		out.Shapes[i] = js
	}
	for i, b := range l.Blends {
		out.Blends[i] = jsonBlend{Cell: b.Cell, Shapes: b.Shapes, Color: b.Color.Hex(), Alpha: b.Color.A}
	}

	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

package pipeline

import (
	"context"
	"fmt"

	"github.com/utensils/hexalith/pkg/logo"
	"github.com/utensils/hexalith/pkg/render"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, l *logo.Logo, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svg []byte
	svgData := func() []byte {
		if svg == nil {
			svg = render.RenderSVG(l, buildSVGOptions(opts)...)
		}
		return svg
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = svgData()
		case FormatPNG:
			var pngOpts []render.PNGOption
			if opts.Background != "" {
				pngOpts = append(pngOpts, render.WithPNGBackground(opts.Background))
			}
			data, err = render.RenderPNG(l, opts.Scale, pngOpts...)
		case FormatPDF:
			data, err = render.ToPDF(ctx, svgData())
		case FormatJSON:
			jsonOpts := []render.JSONOption{render.WithJSONIndent()}
			if opts.Polygons {
				jsonOpts = append(jsonOpts, render.WithJSONPolygons())
			}
			data, err = render.RenderJSON(l, jsonOpts...)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(opts Options) []render.SVGOption {
	var svgOpts []render.SVGOption
	if opts.Background != "" {
		svgOpts = append(svgOpts, render.WithBackground(opts.Background))
	}
	if opts.Boundary != "" {
		svgOpts = append(svgOpts, render.WithBoundary(opts.Boundary))
	}
	if opts.Cells {
		svgOpts = append(svgOpts, render.WithCells())
	}
	return svgOpts
}

// Package pkg provides the core libraries for Hexalith logo generation.
//
// # Overview
//
// Hexalith grows colored shapes on a triangular lattice cut to a hexagon and
// renders them as a logo. Every random choice is drawn from one seeded
// stream, so a seed (or a UUID) and a parameter set always produce the same
// image. The pkg directory is organized into three areas:
//
//  1. Geometry and generation ([grid], [seed], [shape], [color], [jitter], [logo])
//  2. Output ([render])
//  3. Plumbing ([pipeline], [cache], [server], [observability], [errors])
//
// # Architecture
//
// The typical data flow:
//
//	seed / uuid + parameters
//	         ↓
//	    [seed] package (resolve the seed, open the stream)
//	         ↓
//	    [grid] package (6n² cells, adjacency, center ranks)
//	         ↓
//	    [shape] package (grow K candidates per slot, keep the best)
//	         ↓
//	    [color] package (theme colors, blends for overlapping cells)
//	         ↓
//	    [render] package
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
//	l, err := logo.Generate(logo.Params{Seed: logo.Uint64(12345), Theme: "blues"})
//	if err != nil {
//	    return err
//	}
//	svg := render.RenderSVG(l)
//
// With caching and several formats at once:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Params:  logo.Params{UUID: "0d5a4b3c-8f4e-4a1f-9d2e-3b6c7a8e9f01"},
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatPNG},
//	})
//
// # Main Packages
//
// [grid] - Triangular cells inside a hexagon of density n. Cells are linked
// when they share an edge; vertices are compared through integer lattice
// keys, never floats.
//
// [seed] - Seed derivation (explicit, UUID, random) and the PCG stream every
// random draw goes through.
//
// [palette] - The seven built-in themes.
//
// [shape] - Connected shape growth with frontier, skip-cell and layered
// variants, candidate scoring and bounded shrink retries.
//
// [color] - RGBA colors, source-over blending and per-shape color assignment.
//
// [jitter] - Optional vertex perturbation shared across cells.
//
// [logo] - Parameters, validation and the Generate entry point.
//
// [render] - SVG, native PNG, JSON and Graphviz grid diagrams; PDF through
// rsvg-convert.
//
// ## Infrastructure
//
// [pipeline] - Generate then render, used by both the CLI and the HTTP server.
//
// [cache] - Artifact cache with file, Redis and MongoDB backends.
//
// [server] - chi HTTP interface.
//
// [observability] - Hooks for pipeline, cache and HTTP events.
//
// [errors] - Coded errors shared by every package.
//
// # Testing
//
//	go test ./pkg/...                        # All tests
//	go test ./pkg/logo -run Golden -update   # Rewrite the golden logo
//
// [grid]: https://pkg.go.dev/github.com/utensils/hexalith/pkg/grid
// [seed]: https://pkg.go.dev/github.com/utensils/hexalith/pkg/seed
// [palette]: https://pkg.go.dev/github.com/utensils/hexalith/pkg/palette
// [shape]: https://pkg.go.dev/github.com/utensils/hexalith/pkg/shape
// [color]: https://pkg.go.dev/github.com/utensils/hexalith/pkg/color
// [jitter]: https://pkg.go.dev/github.com/utensils/hexalith/pkg/jitter
// [logo]: https://pkg.go.dev/github.com/utensils/hexalith/pkg/logo
// [render]: https://pkg.go.dev/github.com/utensils/hexalith/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/utensils/hexalith/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/utensils/hexalith/pkg/cache
// [server]: https://pkg.go.dev/github.com/utensils/hexalith/pkg/server
// [observability]: https://pkg.go.dev/github.com/utensils/hexalith/pkg/observability
// [errors]: https://pkg.go.dev/github.com/utensils/hexalith/pkg/errors
package pkg

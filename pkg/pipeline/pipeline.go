// Package pipeline runs generate → render for the CLI and the HTTP server.
//
// Both entry points accept the same [Options], resolve the seed the same
// way and share the same cache layout, so a logo requested over HTTP and
// one generated on the command line are byte-identical.
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Params:  logo.Params{Seed: logo.Uint64(12345)},
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/utensils/hexalith/pkg/cache"
	"github.com/utensils/hexalith/pkg/errors"
	"github.com/utensils/hexalith/pkg/logo"
	"github.com/utensils/hexalith/pkg/seed"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// DefaultScale is the PNG scale factor.
const DefaultScale = 1.0

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// formatNames is ValidFormats in display order.
var formatNames = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	logo.Params

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	Background string   `json:"background,omitempty"`
	Boundary   string   `json:"boundary,omitempty"`
	Cells      bool     `json:"cells,omitempty"`
	Polygons   bool     `json:"polygons,omitempty"` // include placed polygons in JSON output

	// Refresh skips cache reads but still writes results.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Seed is the resolved seed; SeedOrigin says where it came from.
	Seed       uint64
	SeedOrigin seed.Origin

	// Logo is the generated model. It is nil when every artifact came
	// from the cache.
	Logo *logo.Logo

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Shapes       int
	Cells        int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache usage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
	Skipped   bool // Whether the cache was bypassed (jitter)
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.ValidateOneOf("format", format, formatNames)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset logo and render fields.
func (o *Options) SetDefaults() {
	o.Params.SetDefaults()
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies defaults and validates every field.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	if err := o.Params.Validate(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidatePositive("scale", o.Scale); err != nil {
		return err
	}
	o.Formats = dedupe(o.Formats)
	return nil
}

// Cacheable reports whether results for these options may be cached.
// Jittered output differs on every run.
func (o *Options) Cacheable() bool {
	return !o.Jitter
}

// LogoKeyOpts returns cache key options for the generated logo. The seed
// must already be resolved.
func (o *Options) LogoKeyOpts(resolved uint64) cache.LogoKeyOpts {
	return cache.LogoKeyOpts{
		Seed:       resolved,
		Theme:      o.Theme,
		Shapes:     o.Shapes,
		Density:    o.Density,
		Opacity:    o.OpacityValue(),
		Overlap:    o.OverlapValue(),
		Width:      o.Width,
		Height:     o.Height,
		Candidates: o.Candidates,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatSVG, FormatPDF:
		opts.Background = o.Background
		opts.Boundary = o.Boundary
		opts.Cells = o.Cells
	case FormatPNG:
		opts.Background = o.Background
		opts.Scale = o.Scale
	case FormatJSON:
		opts.Cells = o.Polygons
	}
	return opts
}

func dedupe(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

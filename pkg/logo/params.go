package logo

import (
	"github.com/utensils/hexalith/pkg/errors"
	"github.com/utensils/hexalith/pkg/grid"
	"github.com/utensils/hexalith/pkg/jitter"
	"github.com/utensils/hexalith/pkg/palette"
	"github.com/utensils/hexalith/pkg/shape"
)

// Default parameter values.
const (
	DefaultShapes  = 3
	DefaultDensity = 2
	DefaultOpacity = 0.8
	DefaultOverlap = true
	DefaultWidth   = 512
	DefaultHeight  = 512
	MaxShapes      = 64
	MaxCanvas      = 8192
)

// Params are the inputs of a generation run.
type Params struct {
	// Seed fixes the stream. Ignored when UUID is set.
	Seed *uint64 `json:"seed,omitempty"`
	// UUID derives the seed from a UUID's bytes.
	UUID string `json:"uuid,omitempty"`
	// Theme names the palette (mesos, google, blues, greens, reds,
	// purples, rainbow).
	Theme string `json:"theme"`
	// Shapes is the number of shapes to grow.
	Shapes int `json:"shapes"`
	// Density is the grid subdivision n, giving 6n² cells.
	Density int `json:"grid_size"`
	// Opacity is the fill alpha for every shape. Nil means the default.
	Opacity *float64 `json:"opacity,omitempty"`
	// Overlap allows later shapes to claim earlier shapes' cells. Nil means
	// the default.
	Overlap *bool `json:"overlap,omitempty"`

	Width  int `json:"width"`
	Height int `json:"height"`

	// Candidates is how many candidates are grown per shape.
	Candidates int `json:"candidates,omitempty"`

	// Jitter perturbs output coordinates by at most JitterEpsilon. Runs
	// with jitter are not reproducible.
	Jitter        bool    `json:"jitter,omitempty"`
	JitterEpsilon float64 `json:"jitter_epsilon,omitempty"`
}

// SetDefaults fills unset fields.
func (p *Params) SetDefaults() {
	if p.Theme == "" {
		p.Theme = palette.Default.String()
	}
	if p.Shapes == 0 {
		p.Shapes = DefaultShapes
	}
	if p.Density == 0 {
		p.Density = DefaultDensity
	}
	if p.Opacity == nil {
		v := DefaultOpacity
		p.Opacity = &v
	}
	if p.Overlap == nil {
		v := DefaultOverlap
		p.Overlap = &v
	}
	if p.Width == 0 {
		p.Width = DefaultWidth
	}
	if p.Height == 0 {
		p.Height = DefaultHeight
	}
	if p.Candidates == 0 {
		p.Candidates = shape.DefaultCandidates
	}
	if p.Jitter && p.JitterEpsilon == 0 {
		p.JitterEpsilon = jitter.DefaultEpsilon
	}
}

// Validate checks every parameter range. It runs before any construction,
// so an invalid request never builds a grid.
func (p *Params) Validate() error {
	if err := errors.ValidateIntRange("grid_density", p.Density, grid.MinDensity, grid.MaxDensity); err != nil {
		return err
	}
	if err := errors.ValidateIntRange("shape_count", p.Shapes, 1, MaxShapes); err != nil {
		return err
	}
	if p.Opacity != nil {
		if err := errors.ValidateFloatRange("opacity", *p.Opacity, 0, 1); err != nil {
			return err
		}
	}
	if _, err := palette.Parse(p.Theme); err != nil {
		return err
	}
	if err := errors.ValidateIntRange("width", p.Width, 1, MaxCanvas); err != nil {
		return err
	}
	if err := errors.ValidateIntRange("height", p.Height, 1, MaxCanvas); err != nil {
		return err
	}
	if err := errors.ValidateIntRange("candidates", p.Candidates, 1, 32); err != nil {
		return err
	}
	if p.JitterEpsilon < 0 {
		return errors.InvalidParameter("jitter_epsilon", "non-negative", p.JitterEpsilon)
	}
	return nil
}

// ValidateAndSetDefaults is SetDefaults followed by Validate.
func (p *Params) ValidateAndSetDefaults() error {
	p.SetDefaults()
	return p.Validate()
}

// OpacityValue returns the effective opacity.
func (p Params) OpacityValue() float64 {
	if p.Opacity == nil {
		return DefaultOpacity
	}
	return *p.Opacity
}

// OverlapValue returns the effective overlap flag.
func (p Params) OverlapValue() bool {
	if p.Overlap == nil {
		return DefaultOverlap
	}
	return *p.Overlap
}

// Float and Bool return pointers for literal parameter values.
func Float(v float64) *float64 { return &v }
func Bool(v bool) *bool        { return &v }
func Uint64(v uint64) *uint64  { return &v }

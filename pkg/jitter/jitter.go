// Package jitter applies a small cosmetic perturbation to output
// coordinates.
//
// Jitter is deliberately outside the deterministic pipeline: it draws from
// its own wall-clock seeded source and only ever moves points. Cell
// membership, shape order and colors are never touched. Offsets are keyed by
// canonical vertex, so a vertex shared by several cells moves once and the
// cells stay watertight.
package jitter

import (
	"math/rand/v2"
	"time"

	"github.com/utensils/hexalith/pkg/geom"
	"github.com/utensils/hexalith/pkg/grid"
)

// DefaultEpsilon is the default maximum offset per axis, in canvas units.
const DefaultEpsilon = 0.5

// Config controls a jitter field.
type Config struct {
	Epsilon float64 // maximum offset per axis; DefaultEpsilon when zero
	Seed    uint64  // wall clock when zero
}

// Field hands out one stable offset per canonical vertex.
type Field struct {
	eps     float64
	rng     *rand.Rand
	offsets map[grid.Key]geom.Point
}

// New returns a field for cfg.
func New(cfg Config) *Field {
	if cfg.Epsilon <= 0 {
		cfg.Epsilon = DefaultEpsilon
	}
	s := cfg.Seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return &Field{
		eps:     cfg.Epsilon,
		rng:     rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)),
		offsets: make(map[grid.Key]geom.Point),
	}
}

// Epsilon returns the maximum offset per axis.
func (f *Field) Epsilon() float64 { return f.eps }

// Offset returns the offset for vertex k, drawing it on first use.
func (f *Field) Offset(k grid.Key) geom.Point {
	if d, ok := f.offsets[k]; ok {
		return d
	}
	d := geom.Point{
		X: (f.rng.Float64()*2 - 1) * f.eps,
		Y: (f.rng.Float64()*2 - 1) * f.eps,
	}
	f.offsets[k] = d
	return d
}

// Apply moves p, whose canonical key is k.
func (f *Field) Apply(k grid.Key, p geom.Point) geom.Point {
	if f == nil {
		return p
	}
	return p.Add(f.Offset(k))
}

// Len returns how many vertices have been perturbed.
func (f *Field) Len() int {
	if f == nil {
		return 0
	}
	return len(f.offsets)
}

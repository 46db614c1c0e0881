package jitter

import (
	"math"
	"testing"

	"github.com/utensils/hexalith/pkg/geom"
	"github.com/utensils/hexalith/pkg/grid"
)

func TestOffsetBounded(t *testing.T) {
	f := New(Config{Epsilon: 0.25, Seed: 1})
	for i := range 1000 {
		d := f.Offset(grid.Key{X: int64(i), Y: int64(-i)})
		if math.Abs(d.X) > 0.25 || math.Abs(d.Y) > 0.25 {
			t.Fatalf("Offset() = %v, exceeds epsilon 0.25", d)
		}
	}
	if f.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000", f.Len())
	}
}

func TestOffsetStablePerKey(t *testing.T) {
	f := New(Config{Seed: 5})
	k := grid.Key{X: 10, Y: 20}
	a := f.Apply(k, geom.Point{X: 1, Y: 1})
	b := f.Apply(k, geom.Point{X: 1, Y: 1})
	if a != b {
		t.Errorf("Apply() = %v then %v, want the same point", a, b)
	}
	if f.Len() != 1 {
		t.Errorf("Len() = %d, want 1", f.Len())
	}
}

func TestDefaults(t *testing.T) {
	f := New(Config{})
	if f.Epsilon() != DefaultEpsilon {
		t.Errorf("Epsilon() = %v, want %v", f.Epsilon(), DefaultEpsilon)
	}
}

func TestNilFieldIsIdentity(t *testing.T) {
	var f *Field
	p := geom.Point{X: 3, Y: 4}
	if got := f.Apply(grid.Key{}, p); got != p {
		t.Errorf("Apply() on nil field = %v, want %v", got, p)
	}
	if f.Len() != 0 {
		t.Errorf("Len() on nil field = %d, want 0", f.Len())
	}
}

package grid

import (
	"math"

	"github.com/utensils/hexalith/pkg/geom"
)

// lattice is a point on the triangular lattice in axial coordinates:
// q steps along 0°, r steps along 60°.
type lattice struct{ q, r int }

func (a lattice) add(b lattice) lattice { return lattice{a.q + b.q, a.r + b.r} }
func (a lattice) mul(k int) lattice     { return lattice{a.q * k, a.r * k} }

// corners are the six unit directions toward the hexagon corners, in
// counter-clockwise order starting at 0°.
var corners = [6]lattice{{1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {0, -1}, {1, -1}}

// point maps a lattice coordinate to the plane for spacing s.
func (a lattice) point(s float64) geom.Point {
	return geom.Point{
		X: s * float64(2*a.q+a.r) / 2,
		Y: s * float64(a.r) * geom.Sqrt3 / 2,
	}
}

// triangle is a lattice-space cell before it is placed in the plane.
type triangle struct {
	v     [3]lattice
	wedge int
}

// up reports the orientation from lattice parity: every lattice triangle
// is either {p, p+e1, p+e2} (vertex sum ≡ 2 mod 3) or its rotation by 180°.
func (t triangle) up() bool {
	s := 0
	for _, v := range t.v {
		s += v.q + v.r
	}
	return ((s%3)+3)%3 == 2
}

// radius9 returns nine times the squared distance of the centroid from the
// origin in lattice units. For a centroid (Q/3, R/3) the squared hex norm
// is (Q² + QR + R²) / 9, so the scaled value is an exact integer.
func (t triangle) radius9() int {
	var Q, R int
	for _, v := range t.v {
		Q += v.q
		R += v.r
	}
	return Q*Q + Q*R + R*R
}

// keyPrecision is the rounding applied to coordinates, in lattice units,
// when building canonical vertex keys.
const keyPrecision = 1e6

// Key is a canonical vertex key: a coordinate rounded to a fixed precision
// relative to the lattice spacing. Floating-point noise from different
// construction paths maps to the same key.
type Key struct{ X, Y int64 }

// KeyOf canonicalizes p for lattice spacing s.
func KeyOf(p geom.Point, s float64) Key {
	return Key{
		X: int64(math.Round(p.X / s * keyPrecision)),
		Y: int64(math.Round(p.Y / s * keyPrecision)),
	}
}

func (k Key) less(o Key) bool {
	if k.X != o.X {
		return k.X < o.X
	}
	return k.Y < o.Y
}

// EdgeKey identifies an undirected edge by its two canonical endpoints,
// smaller key first.
type EdgeKey struct{ A, B Key }

func edgeKey(a, b Key) EdgeKey {
	if b.less(a) {
		a, b = b, a
	}
	return EdgeKey{a, b}
}

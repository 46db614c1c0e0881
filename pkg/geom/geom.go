// Package geom holds the small 2D value types shared by the grid, the
// logo model and the renderers.
package geom

import "math"

// Sqrt3 is √3, used by every triangular-lattice computation.
var Sqrt3 = math.Sqrt(3)

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }
func (p Point) Len() float64          { return math.Hypot(p.X, p.Y) }
func (p Point) Dist(q Point) float64  { return p.Sub(q).Len() }
func (p Point) Dot(q Point) float64   { return p.X*q.X + p.Y*q.Y }
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }
func (p Point) Angle() float64        { return math.Atan2(p.Y, p.X) }
func (p Point) Near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Polygon is a closed ring of points; the closing edge is implicit.
type Polygon []Point

// Centroid returns the vertex average, which for a triangle is the
// barycenter.
func (pg Polygon) Centroid() Point {
	var c Point
	if len(pg) == 0 {
		return c
	}
	for _, p := range pg {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(pg)))
}

// Area returns the signed shoelace area; positive for counter-clockwise
// rings in a y-up frame.
func (pg Polygon) Area() float64 {
	var a float64
	for i, p := range pg {
		q := pg[(i+1)%len(pg)]
		a += p.Cross(q)
	}
	return a / 2
}

// Translate returns a copy shifted by d.
func (pg Polygon) Translate(d Point) Polygon {
	out := make(Polygon, len(pg))
	for i, p := range pg {
		out[i] = p.Add(d)
	}
	return out
}

// Contains reports whether p lies inside or on the boundary of a convex
// polygon, within eps.
func (pg Polygon) Contains(p Point, eps float64) bool {
	if len(pg) < 3 {
		return false
	}
	sign := 0.0
	for i, a := range pg {
		b := pg[(i+1)%len(pg)]
		c := b.Sub(a).Cross(p.Sub(a))
		if math.Abs(c) <= eps*b.Dist(a) {
			continue
		}
		if sign == 0 {
			sign = c
		} else if (c > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

// Hexagon returns the regular hexagon of circumradius r centered at c, with
// its first corner at angle 0 and corners in counter-clockwise order.
func Hexagon(c Point, r float64) Polygon {
	h := r * Sqrt3 / 2
	return Polygon{
		{c.X + r, c.Y},
		{c.X + r/2, c.Y + h},
		{c.X - r/2, c.Y + h},
		{c.X - r, c.Y},
		{c.X - r/2, c.Y - h},
		{c.X + r/2, c.Y - h},
	}
}

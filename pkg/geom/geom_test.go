package geom

import (
	"math"
	"testing"
)

func TestPolygonCentroid(t *testing.T) {
	tri := Polygon{{0, 0}, {3, 0}, {0, 3}}
	got := tri.Centroid()
	if !got.Near(Point{1, 1}, 1e-12) {
		t.Errorf("Centroid() = %v, want (1, 1)", got)
	}
	if (Polygon{}).Centroid() != (Point{}) {
		t.Error("Centroid() of empty polygon should be the origin")
	}
}

func TestPolygonArea(t *testing.T) {
	sq := Polygon{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	if got := sq.Area(); got != 4 {
		t.Errorf("Area() = %v, want 4", got)
	}
	rev := Polygon{{0, 2}, {2, 2}, {2, 0}, {0, 0}}
	if got := rev.Area(); got != -4 {
		t.Errorf("Area() reversed = %v, want -4", got)
	}
}

func TestHexagon(t *testing.T) {
	hex := Hexagon(Point{}, 100)
	if len(hex) != 6 {
		t.Fatalf("len = %d, want 6", len(hex))
	}
	for i, p := range hex {
		if math.Abs(p.Len()-100) > 1e-9 {
			t.Errorf("corner %d at distance %v, want 100", i, p.Len())
		}
	}
	want := 3 * Sqrt3 / 2 * 100 * 100
	if got := hex.Area(); math.Abs(got-want) > 1e-6 {
		t.Errorf("Area() = %v, want %v", got, want)
	}
}

func TestPolygonContains(t *testing.T) {
	hex := Hexagon(Point{}, 10)
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{10, 0}, true},
		{Point{9.9, 0}, true},
		{Point{10.1, 0}, false},
		{Point{0, 9}, false},
		{Point{0, 8.6}, true},
	}
	for _, tt := range tests {
		if got := hex.Contains(tt.p, 1e-9); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	pg := Polygon{{1, 1}, {2, 2}}
	out := pg.Translate(Point{10, -1})
	if out[0] != (Point{11, 0}) || out[1] != (Point{12, 1}) {
		t.Errorf("Translate() = %v", out)
	}
	if pg[0] != (Point{1, 1}) {
		t.Error("Translate() mutated its receiver")
	}
}

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utensils/hexalith/pkg/errors"
	"github.com/utensils/hexalith/pkg/grid"
	"github.com/utensils/hexalith/pkg/palette"
	"github.com/utensils/hexalith/pkg/seed"
	"github.com/utensils/hexalith/pkg/shape"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#FFCC09")
	require.NoError(t, err)
	assert.Equal(t, "#ffcc09", c.Hex())
	assert.Equal(t, 1.0, c.A)

	_, err = ParseHex("FFCC0")
	assert.Error(t, err)
}

func TestOverOpaqueBase(t *testing.T) {
	red, blue := MustHex("#FF0000"), MustHex("#0000FF")
	got := blue.WithAlpha(0.5).Over(red)
	assert.Equal(t, "#800080", got.Hex())
	assert.Equal(t, 1.0, got.A)
}

func TestOverTransparent(t *testing.T) {
	assert.Equal(t, Transparent, Transparent.Over(Transparent))

	c := MustHex("#3960A9").WithAlpha(0.8)
	got := c.Over(Transparent)
	assert.InDelta(t, 0.8, got.A, 1e-12)
	assert.InDelta(t, c.R, got.R, 1e-12)
	assert.InDelta(t, c.B, got.B, 1e-12)
}

func TestCompositeTwoLayers(t *testing.T) {
	a, b := MustHex("#E42728"), MustHex("#20B7E8")
	got := Composite([]RGBA{a, b}, 0.8)

	// b at 0.8 over (a at 0.8 over transparent)
	wantA := 0.8 + 0.8*0.2
	assert.InDelta(t, wantA, got.A, 1e-12)
	assert.InDelta(t, (0.8*b.R+0.16*a.R)/wantA, got.R, 1e-12)
	assert.InDelta(t, (0.8*b.G+0.16*a.G)/wantA, got.G, 1e-12)
	assert.InDelta(t, (0.8*b.B+0.16*a.B)/wantA, got.B, 1e-12)

	manual := b.WithAlpha(0.8).Over(a.WithAlpha(0.8).Over(Transparent))
	assert.Equal(t, manual, got)
}

func TestCompositeOrderMatters(t *testing.T) {
	a, b, c := MustHex("#FF0000"), MustHex("#00FF00"), MustHex("#0000FF")
	abc := Composite([]RGBA{a, b, c}, 0.6)
	cba := Composite([]RGBA{c, b, a}, 0.6)
	assert.NotEqual(t, abc.Hex(), cba.Hex())
	assert.InDelta(t, abc.A, cba.A, 1e-12)
	assert.Equal(t, Transparent, Composite(nil, 0.6))
}

func TestNRGBA(t *testing.T) {
	c := MustHex("#4285F4").WithAlpha(0.5).NRGBA()
	assert.Equal(t, uint8(0x42), c.R)
	assert.Equal(t, uint8(0x85), c.G)
	assert.Equal(t, uint8(0xF4), c.B)
	assert.Equal(t, uint8(128), c.A)
}

func TestDistance(t *testing.T) {
	red, blue := MustHex("#FF0000"), MustHex("#0000FF")
	assert.InDelta(t, 0, Distance(red, red), 1e-9)
	assert.Greater(t, Distance(red, blue), Distance(red, MustHex("#FF4500")))
}

func twoShapes() []shape.Shape {
	return []shape.Shape{
		{Order: 0, Cells: []int{0, 1}},
		{Order: 1, Cells: []int{1, 2}},
	}
}

func TestAssignBlendsSharedCells(t *testing.T) {
	g, err := grid.Build(2, 100)
	require.NoError(t, err)
	shapes := twoShapes()

	a, err := Assign(g, shapes, palette.Mesos, 0.8, seed.New(1))
	require.NoError(t, err)
	require.Len(t, a.Fills, 2)
	assert.NotEqual(t, a.Palette[0], a.Palette[1])
	assert.Equal(t, 0.8, a.Fills[0].A)

	require.Len(t, a.Blends, 1)
	bl := a.Blends[0]
	assert.Equal(t, 1, bl.Cell)
	assert.Equal(t, []int{0, 1}, bl.Shapes)
	assert.Equal(t, a.Fills[1].Over(a.Fills[0].Over(Transparent)), bl.Color)

	got, ok := a.CellColor(shapes, 1)
	assert.True(t, ok)
	assert.Equal(t, bl.Color, got)
	got, ok = a.CellColor(shapes, 2)
	assert.True(t, ok)
	assert.Equal(t, a.Fills[1], got)
	_, ok = a.CellColor(shapes, 20)
	assert.False(t, ok)
}

func TestAssignAvoidsTouchingColors(t *testing.T) {
	g, err := grid.Build(4, 100)
	require.NoError(t, err)
	for s := uint64(0); s < 10; s++ {
		rng := seed.New(s)
		shapes, _, err := shape.Grow(g, rng, shape.Config{Count: 6, Overlap: s%2 == 0})
		require.NoError(t, err)
		a, err := Assign(g, shapes, palette.Blues, 0.8, rng)
		require.NoError(t, err)
		assert.Zero(t, a.Fallback)
		for i := range shapes {
			for j := i + 1; j < len(shapes); j++ {
				if shape.Touching(g, shapes[i], shapes[j]) {
					assert.NotEqual(t, a.Palette[i], a.Palette[j], "seed %d shapes %d, %d", s, i, j)
				}
			}
		}
		// Fifteen colors and six shapes: nothing should repeat.
		seen := map[int]bool{}
		for _, p := range a.Palette {
			assert.False(t, seen[p])
			seen[p] = true
		}
	}
}

func TestAssignFallsBackWhenPaletteExhausted(t *testing.T) {
	g, err := grid.Build(2, 100)
	require.NoError(t, err)

	n := palette.Google.Len() + 1
	shapes := make([]shape.Shape, n)
	for i := range shapes {
		shapes[i] = shape.Shape{Order: i, Cells: []int{0}}
	}
	a, err := Assign(g, shapes, palette.Google, 0.5, seed.New(4))
	require.NoError(t, err)
	assert.Equal(t, 1, a.Fallback)

	seen := map[int]bool{}
	for _, p := range a.Palette[:n-1] {
		seen[p] = true
	}
	assert.Len(t, seen, n-1)

	require.Len(t, a.Blends, 1)
	assert.Len(t, a.Blends[0].Shapes, n)
}

func TestAssignDeterministic(t *testing.T) {
	g, err := grid.Build(3, 100)
	require.NoError(t, err)
	shapes := twoShapes()
	a, err := Assign(g, shapes, palette.Rainbow, 0.7, seed.New(77))
	require.NoError(t, err)
	b, err := Assign(g, shapes, palette.Rainbow, 0.7, seed.New(77))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestAssignValidates(t *testing.T) {
	g, err := grid.Build(2, 100)
	require.NoError(t, err)

	_, err = Assign(g, twoShapes(), palette.Mesos, 1.2, seed.New(1))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidParameter))

	_, err = Assign(g, twoShapes(), palette.Theme(42), 0.5, seed.New(1))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidParameter))
}

package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utensils/hexalith/pkg/errors"
)

func TestDeriveFromSeed(t *testing.T) {
	v := uint64(12345)
	src, err := Derive(&v, "")
	require.NoError(t, err)
	assert.Equal(t, uint64(12345), src.Seed)
	assert.Equal(t, FromSeed, src.Origin)
	assert.False(t, src.Random())
}

func TestDeriveUUIDOverridesSeed(t *testing.T) {
	v := uint64(1)
	id := "550e8400-e29b-41d4-a716-446655440000"

	a, err := Derive(&v, id)
	require.NoError(t, err)
	b, err := Derive(nil, id)
	require.NoError(t, err)

	assert.Equal(t, FromUUID, a.Origin)
	assert.Equal(t, a.Seed, b.Seed)
	assert.NotEqual(t, uint64(1), a.Seed)

	other, err := Derive(nil, "6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, err)
	assert.NotEqual(t, a.Seed, other.Seed)
}

func TestDeriveUUIDCaseInsensitive(t *testing.T) {
	a, err := FromUUIDString("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)
	b, err := FromUUIDString("550E8400-E29B-41D4-A716-446655440000")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDeriveMalformedUUID(t *testing.T) {
	for _, id := range []string{"not-a-uuid", "1234", "550e8400-e29b-41d4-a716-44665544000z"} {
		_, err := Derive(nil, id)
		require.Error(t, err, id)
		assert.True(t, errors.Is(err, errors.ErrCodeSeedDerivation), "%s: %v", id, err)
	}
}

func TestDeriveRandom(t *testing.T) {
	src, err := Derive(nil, "")
	require.NoError(t, err)
	assert.True(t, src.Random())
}

func TestStreamDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for range 100 {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
		require.Equal(t, a.Float64(), b.Float64())
	}
	assert.Equal(t, 200, a.Draws())

	x, y := New(42), New(43)
	same := true
	for range 10 {
		if x.IntN(1<<30) != y.IntN(1<<30) {
			same = false
		}
	}
	assert.False(t, same, "different seeds should give different streams")
}

func TestIntRange(t *testing.T) {
	s := New(7)
	for range 500 {
		v := s.IntRange(3, 5)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 5)
	}
	before := s.Draws()
	assert.Equal(t, 4, s.IntRange(4, 4))
	assert.Equal(t, before, s.Draws(), "degenerate range should not consume the stream")
}

func TestWeighted(t *testing.T) {
	s := New(99)
	assert.Equal(t, -1, s.Weighted(nil))
	assert.Equal(t, -1, s.Weighted([]float64{0, -1}))

	for range 200 {
		i := s.Weighted([]float64{0, 2, 0, 1})
		require.Contains(t, []int{1, 3}, i)
	}

	counts := make([]int, 2)
	for range 2000 {
		counts[s.Weighted([]float64{9, 1})]++
	}
	assert.Greater(t, counts[0], counts[1]*4)
}

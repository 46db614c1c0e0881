package seed

import "math/rand/v2"

// Stream is a seeded PCG source with the few draws the generator needs.
// It is not safe for concurrent use; each run owns one.
type Stream struct {
	rng   *rand.Rand
	draws int
}

// New returns the stream for seed.
func New(seed uint64) *Stream {
	return &Stream{rng: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

// IntN returns a value in [0, n). n must be positive.
func (s *Stream) IntN(n int) int {
	s.draws++
	return s.rng.IntN(n)
}

// IntRange returns a value in [lo, hi], inclusive.
func (s *Stream) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.IntN(hi-lo+1)
}

// Float64 returns a value in [0, 1).
func (s *Stream) Float64() float64 {
	s.draws++
	return s.rng.Float64()
}

// Weighted draws an index with probability proportional to its weight.
// Non-positive weights are never chosen. It returns -1 when no weight is
// positive.
func (s *Stream) Weighted(weights []float64) int {
	var total float64
	last := -1
	for i, w := range weights {
		if w > 0 {
			total += w
			last = i
		}
	}
	if last < 0 {
		return -1
	}
	x := s.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if x < w {
			return i
		}
		x -= w
	}
	return last
}

// Draws returns how many values have been taken from the stream.
func (s *Stream) Draws() int { return s.draws }

package shape

import "math"

// SizeRange returns the inclusive range shape sizes are drawn from. Sizes
// scale with the grid: a density-2 grid draws from [2, min(5, cells/count)],
// larger grids from roughly 1% to 5% of their cells. The upper bound is
// always above the lower one.
func SizeRange(density, cells, count int) (lo, hi int) {
	if count < 1 {
		count = 1
	}
	if density <= 2 {
		lo = 2
		return lo, max(lo+1, min(5, cells/count))
	}
	lo = max(1, int(math.Round(float64(cells)*0.01)))
	hi = int(math.Round(float64(cells) * 0.05))
	return lo, max(hi, lo+1)
}

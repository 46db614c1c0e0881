package shape

import (
	"math"
	"slices"

	"github.com/utensils/hexalith/pkg/errors"
	"github.com/utensils/hexalith/pkg/geom"
	"github.com/utensils/hexalith/pkg/grid"
	"github.com/utensils/hexalith/pkg/seed"
)

// Defaults for [Config].
const (
	DefaultCandidates = 3
	DefaultMaxRetries = 4
)

// Config controls a growth run.
type Config struct {
	Count      int       // number of shapes
	Overlap    bool      // allow later shapes to re-claim cells
	Candidates int       // candidates grown per shape (default 3)
	MaxRetries int       // shrink-and-retry attempts per shape (default 4)
	Variants   []Variant // allowed heuristics (default all)
	MinSize    int       // overrides the lower size bound when > 0
	MaxSize    int       // overrides the upper size bound when > 0
}

func (c *Config) setDefaults() {
	if c.Candidates <= 0 {
		c.Candidates = DefaultCandidates
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if len(c.Variants) == 0 {
		c.Variants = Variants
	}
}

// Stats describes how a growth run went.
type Stats struct {
	Retries []int // shrink retries per shape
	Grown   int   // candidates grown in total
	Shrunk  int   // shapes accepted below their first target
}

// Grow produces cfg.Count shapes in generation order. All randomness comes
// from rng, so equal grids, configs and stream states give equal shapes.
func Grow(g *grid.Grid, rng *seed.Stream, cfg Config) ([]Shape, Stats, error) {
	cfg.setDefaults()
	if cfg.Count < 1 {
		return nil, Stats{}, errors.InvalidParameter("shape_count", "at least 1", cfg.Count)
	}

	lo, hi := SizeRange(g.Density, g.Len(), cfg.Count)
	if cfg.MinSize > 0 {
		lo = cfg.MinSize
	}
	if cfg.MaxSize > 0 {
		hi = max(cfg.MaxSize, lo)
	}

	gr := &grower{g: g, rng: rng, overlap: cfg.Overlap, claimed: make([]int, g.Len())}
	shapes := make([]Shape, 0, cfg.Count)
	stats := Stats{Retries: make([]int, cfg.Count)}

	for i := range cfg.Count {
		first := rng.IntRange(lo, hi)
		target, viable := first, min(first, lo)

		var accepted *candidate
		for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
			best := gr.best(target, cfg, &stats)
			n := len(best.cells)
			if n > 0 && (n >= viable || attempt == cfg.MaxRetries) {
				accepted = &best
				stats.Retries[i] = attempt
				break
			}
			viable = max(1, viable/2)
			target = max(viable, target/2)
		}
		if accepted == nil {
			return nil, stats, errors.New(errors.ErrCodeShapeGrowthExhausted,
				"shape %d of %d: no room left after %d retries", i+1, cfg.Count, cfg.MaxRetries)
		}
		if len(accepted.cells) < first {
			stats.Shrunk++
		}

		cells := slices.Clone(accepted.cells)
		slices.Sort(cells)
		for _, c := range cells {
			gr.claimed[c]++
		}
		shapes = append(shapes, Shape{
			Order:   i,
			Cells:   cells,
			Variant: accepted.variant,
			Target:  target,
			Score:   accepted.score,
		})
	}
	return shapes, stats, nil
}

type candidate struct {
	cells   []int
	variant Variant
	score   float64
}

type grower struct {
	g       *grid.Grid
	rng     *seed.Stream
	overlap bool
	claimed []int // shapes already claiming each cell
}

func (gr *grower) available(c int) bool { return gr.overlap || gr.claimed[c] == 0 }

// best grows cfg.Candidates candidates and returns the lowest scoring one;
// earlier candidates win ties.
func (gr *grower) best(target int, cfg Config, stats *Stats) candidate {
	var best candidate
	for k := range cfg.Candidates {
		v := cfg.Variants[0]
		if len(cfg.Variants) > 1 {
			v = cfg.Variants[gr.rng.IntN(len(cfg.Variants))]
		}
		cells := gr.grow(v, target)
		stats.Grown++
		c := candidate{cells: cells, variant: v, score: gr.score(cells, target)}
		if k == 0 || c.score < best.score {
			best = c
		}
	}
	return best
}

// score penalizes missing the target first, then a ragged boundary.
func (gr *grower) score(cells []int, target int) float64 {
	if len(cells) == 0 {
		return math.Inf(1)
	}
	deficit := float64(target - len(cells))
	return deficit*10 + float64(gr.g.Perimeter(cells))/float64(len(cells))
}

// start picks one of the lowest-rank available cells, or -1.
func (gr *grower) start() int {
	var cands []int
	rank := -1
	for _, c := range gr.g.ByRank() {
		if !gr.available(c) {
			continue
		}
		r := gr.g.Cells[c].Rank
		if rank < 0 {
			rank = r
		}
		if r != rank {
			break
		}
		cands = append(cands, c)
	}
	if len(cands) == 0 {
		return -1
	}
	return cands[gr.rng.IntN(len(cands))]
}

// grow runs one frontier expansion. The frontier is kept sorted so weight
// order, and therefore every draw, is reproducible.
func (gr *grower) grow(v Variant, target int) []int {
	s := gr.start()
	if s < 0 {
		return nil
	}

	n := gr.g.Len()
	in := make([]bool, n)
	onFrontier := make([]bool, n)
	hop := make([]int, n)
	var frontier []int

	var heading geom.Point
	if v == Directional {
		a := gr.rng.Float64() * 2 * math.Pi
		heading = geom.Point{X: math.Cos(a), Y: math.Sin(a)}
	}

	cells := make([]int, 0, target)
	add := func(c int) {
		in[c] = true
		cells = append(cells, c)
		if onFrontier[c] {
			onFrontier[c] = false
			i, _ := slices.BinarySearch(frontier, c)
			frontier = slices.Delete(frontier, i, i+1)
		}
		for _, nb := range gr.g.Neighbors(c) {
			if in[nb] || onFrontier[nb] || !gr.available(nb) {
				continue
			}
			onFrontier[nb] = true
			hop[nb] = hop[c] + 1
			i, _ := slices.BinarySearch(frontier, nb)
			frontier = slices.Insert(frontier, i, nb)
		}
	}
	add(s)

	origin := gr.g.Cells[s].Centroid
	baseRank := gr.g.Cells[s].Rank
	weights := make([]float64, 0, 16)
	for len(cells) < target && len(frontier) > 0 {
		weights = weights[:0]
		switch v {
		case Directional:
			for _, c := range frontier {
				cell := gr.g.Cells[c]
				align := 0.0
				if d := cell.Centroid.Sub(origin); d.Len() > 1e-9 {
					align = d.Scale(1 / d.Len()).Dot(heading)
				}
				lift := float64(max(0, cell.Rank-baseRank))
				weights = append(weights, (1.25+align)*(1.25+align)/(1+0.25*lift))
			}
		case BreadthFirst:
			near := math.MaxInt
			for _, c := range frontier {
				near = min(near, hop[c])
			}
			for _, c := range frontier {
				w := 0.0
				if hop[c] == near {
					w = 1
				}
				weights = append(weights, w)
			}
		case SimpleBoundary:
			for _, c := range frontier {
				inside, crowded := 0, 0
				for _, nb := range gr.g.Neighbors(c) {
					switch {
					case in[nb]:
						inside++
					case gr.claimed[nb] > 0:
						crowded++
					}
				}
				weights = append(weights, float64(1+inside*inside)/float64(1+2*crowded))
			}
		}
		add(frontier[gr.rng.Weighted(weights)])
	}
	return cells
}

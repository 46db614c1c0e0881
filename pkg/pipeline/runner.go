package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/utensils/hexalith/pkg/cache"
	"github.com/utensils/hexalith/pkg/logo"
	"github.com/utensils/hexalith/pkg/observability"
	"github.com/utensils/hexalith/pkg/seed"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLArtifact,
	}
}

// Execute validates opts, resolves the seed, and returns every requested
// artifact, from the cache when possible.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	src, err := seed.Derive(opts.Seed, opts.UUID)
	if err != nil {
		return nil, err
	}
	// Pin the seed so a random draw is used for both the cache key and
	// the generation itself.
	opts.Seed = logo.Uint64(src.Seed)
	opts.UUID = ""

	result := &Result{
		Seed:       src.Seed,
		SeedOrigin: src.Origin,
		Artifacts:  make(map[string][]byte),
	}
	result.CacheInfo.Skipped = !opts.Cacheable()

	logoKey := r.Keyer.LogoKey(opts.LogoKeyOpts(src.Seed))
	if opts.Cacheable() && !opts.Refresh {
		if hit := r.cached(ctx, logoKey, opts, result.Artifacts); hit {
			result.CacheInfo.RenderHit = true
			opts.Logger.Debug("artifacts from cache", "seed", src.Seed, "formats", opts.Formats)
			return result, nil
		}
	}

	// Stage 1: Generate
	l, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, err
	}
	l.SeedOrigin = src.Origin
	result.Logo = l
	result.Stats.GenerateTime = l.Stats.Duration
	result.Stats.Shapes = len(l.Shapes)
	result.Stats.Cells = l.Cells()

	opts.Logger.Info("generated logo",
		"seed", l.Seed,
		"origin", src.Origin,
		"theme", l.Theme,
		"shapes", len(l.Shapes),
		"cells", result.Stats.Cells,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, err := Render(ctx, l, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts

	opts.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	if opts.Cacheable() {
		for format, data := range artifacts {
			key := r.Keyer.ArtifactKey(logoKey, opts.ArtifactKeyOpts(format))
			if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
				opts.Logger.Warn("cache write failed", "format", format, "err", err)
				continue
			}
			observability.Cache().OnCacheSet(ctx, format, len(data))
		}
	}

	return result, nil
}

// Generate runs the logo generator with pipeline hooks around it.
func (r *Runner) Generate(ctx context.Context, opts Options) (*logo.Logo, error) {
	var s uint64
	if opts.Seed != nil {
		s = *opts.Seed
	}
	observability.Pipeline().OnGenerateStart(ctx, s, opts.Shapes)
	l, err := logo.Generate(opts.Params)
	if err != nil {
		observability.Pipeline().OnGenerateComplete(ctx, s, 0, 0, err)
		return nil, fmt.Errorf("generate: %w", err)
	}
	observability.Pipeline().OnGenerateComplete(ctx, l.Seed, l.Cells(), l.Stats.Duration, nil)
	return l, nil
}

// cached fills artifacts from the cache. It reports a hit only when every
// requested format is present; a partial hit renders everything again.
func (r *Runner) cached(ctx context.Context, logoKey string, opts Options, artifacts map[string][]byte) bool {
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(logoKey, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			opts.Logger.Warn("cache read failed", "format", format, "err", err)
		}
		if err != nil || !hit {
			observability.Cache().OnCacheMiss(ctx, format)
			clear(artifacts)
			return false
		}
		observability.Cache().OnCacheHit(ctx, format)
		artifacts[format] = data
	}
	return true
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

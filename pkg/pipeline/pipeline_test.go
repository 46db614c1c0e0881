package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/utensils/hexalith/pkg/cache"
	"github.com/utensils/hexalith/pkg/errors"
	"github.com/utensils/hexalith/pkg/logo"
	"github.com/utensils/hexalith/pkg/seed"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidParameter) {
			t.Errorf("ValidateFormat(%q) code = %s, want %s", tt.format, errors.GetCode(err), errors.ErrCodeInvalidParameter)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", opts.Scale, DefaultScale)
	}
	if opts.Shapes != logo.DefaultShapes {
		t.Errorf("Shapes = %d, want %d", opts.Shapes, logo.DefaultShapes)
	}
	if opts.Density != logo.DefaultDensity {
		t.Errorf("Density = %d, want %d", opts.Density, logo.DefaultDensity)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Formats: []string{"png", "svg", "png"}}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}
	first := append([]string(nil), opts.Formats...)
	theme := opts.Theme

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}
	if len(opts.Formats) != 2 || opts.Formats[0] != first[0] || opts.Formats[1] != first[1] {
		t.Errorf("Formats changed on second call: %v -> %v", first, opts.Formats)
	}
	if opts.Theme != theme {
		t.Error("Theme changed on second call")
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		field string
	}{
		{"density low", Options{Params: logo.Params{Density: 1}}, "grid_density"},
		{"density high", Options{Params: logo.Params{Density: 9}}, "grid_density"},
		{"opacity", Options{Params: logo.Params{Opacity: logo.Float(1.2)}}, "opacity"},
		{"theme", Options{Params: logo.Params{Theme: "neon"}}, "theme"},
		{"format", Options{Formats: []string{"gif"}}, "format"},
		{"scale", Options{Scale: -1}, "scale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.GetField(err); got != tt.field {
				t.Errorf("GetField() = %q, want %q", got, tt.field)
			}
		})
	}
}

func TestArtifactKeyOptsPerFormat(t *testing.T) {
	opts := Options{Background: "#ffffff", Scale: 2, Cells: true}

	svg := opts.ArtifactKeyOpts(FormatSVG)
	if svg.Scale != 0 {
		t.Errorf("svg key should ignore scale, got %v", svg.Scale)
	}
	if !svg.Cells || svg.Background != "#ffffff" {
		t.Errorf("svg key should carry cells and background: %+v", svg)
	}

	png := opts.ArtifactKeyOpts(FormatPNG)
	if png.Scale != 2 {
		t.Errorf("png key Scale = %v, want 2", png.Scale)
	}

	js := opts.ArtifactKeyOpts(FormatJSON)
	if js.Background != "" || js.Cells {
		t.Errorf("json key should ignore svg options: %+v", js)
	}
}

func TestExecute(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), Options{
		Params:  logo.Params{Seed: logo.Uint64(12345)},
		Formats: []string{FormatSVG, FormatJSON, FormatPNG},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.Seed != 12345 || res.SeedOrigin != seed.FromSeed {
		t.Errorf("seed = %d (%s), want 12345 (seed)", res.Seed, res.SeedOrigin)
	}
	if res.Logo == nil {
		t.Fatal("Logo should be set on a cache miss")
	}
	if res.Stats.Shapes != logo.DefaultShapes {
		t.Errorf("Stats.Shapes = %d, want %d", res.Stats.Shapes, logo.DefaultShapes)
	}
	if !bytes.HasPrefix(res.Artifacts[FormatSVG], []byte("<svg")) {
		t.Errorf("svg artifact does not start with <svg: %.40q", res.Artifacts[FormatSVG])
	}
	if !bytes.HasPrefix(res.Artifacts[FormatPNG], []byte("\x89PNG")) {
		t.Error("png artifact missing PNG signature")
	}

	var doc struct {
		Seed uint64 `json:"seed"`
	}
	if err := json.Unmarshal(res.Artifacts[FormatJSON], &doc); err != nil {
		t.Fatalf("json artifact: %v", err)
	}
	if doc.Seed != 12345 {
		t.Errorf("json seed = %d, want 12345", doc.Seed)
	}
}

func TestExecuteDeterministic(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	opts := Options{Params: logo.Params{Seed: logo.Uint64(7), Density: 4, Shapes: 5}}

	a, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Artifacts[FormatSVG], b.Artifacts[FormatSVG]) {
		t.Error("same seed and params should produce identical SVG")
	}
}

func TestExecuteRandomSeedIsReported(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.SeedOrigin != seed.FromRandom {
		t.Errorf("SeedOrigin = %s, want random", res.SeedOrigin)
	}
	if res.Logo.Seed != res.Seed {
		t.Errorf("Logo.Seed = %d, Result.Seed = %d; want equal", res.Logo.Seed, res.Seed)
	}

	// Replaying the reported seed reproduces the output.
	again, err := r.Execute(context.Background(), Options{Params: logo.Params{Seed: logo.Uint64(res.Seed)}})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(res.Artifacts[FormatSVG], again.Artifacts[FormatSVG]) {
		t.Error("replaying the reported seed should reproduce the logo")
	}
}

func TestExecuteUUID(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	const id = "123e4567-e89b-12d3-a456-426614174000"
	res, err := r.Execute(context.Background(), Options{Params: logo.Params{UUID: id, Seed: logo.Uint64(1)}})
	if err != nil {
		t.Fatal(err)
	}
	want, _ := seed.FromUUIDString(id)
	if res.Seed != want || res.SeedOrigin != seed.FromUUID {
		t.Errorf("seed = %d (%s), want %d (uuid)", res.Seed, res.SeedOrigin, want)
	}

	_, err = r.Execute(context.Background(), Options{Params: logo.Params{UUID: "not-a-uuid"}})
	if !errors.Is(err, errors.ErrCodeSeedDerivation) {
		t.Errorf("malformed uuid error = %v, want %s", err, errors.ErrCodeSeedDerivation)
	}
}

func TestExecuteCaches(t *testing.T) {
	mc := newMemCache()
	r := NewRunner(mc, nil, nil)
	opts := Options{Params: logo.Params{Seed: logo.Uint64(99)}, Formats: []string{FormatSVG, FormatJSON}}

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheInfo.RenderHit {
		t.Error("first run should miss")
	}
	if mc.sets != 2 {
		t.Errorf("cache sets = %d, want 2", mc.sets)
	}

	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit")
	}
	if second.Logo != nil {
		t.Error("Logo should be nil on a full cache hit")
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached svg differs from rendered svg")
	}

	// Refresh re-renders.
	opts.Refresh = true
	third, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheInfo.RenderHit || third.Logo == nil {
		t.Error("refresh should bypass cache reads")
	}

	// A new format is a partial hit and renders everything again.
	opts.Refresh = false
	opts.Formats = []string{FormatSVG, FormatPNG}
	fourth, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if fourth.CacheInfo.RenderHit {
		t.Error("partial cache hit should render")
	}
	if len(fourth.Artifacts) != 2 {
		t.Errorf("artifacts = %d, want 2", len(fourth.Artifacts))
	}
}

func TestExecuteJitterSkipsCache(t *testing.T) {
	mc := newMemCache()
	r := NewRunner(mc, nil, nil)
	opts := Options{Params: logo.Params{Seed: logo.Uint64(5), Jitter: true}}

	res, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !res.CacheInfo.Skipped {
		t.Error("jittered run should skip the cache")
	}
	if mc.sets != 0 || mc.gets != 0 {
		t.Errorf("cache touched with jitter: gets %d, sets %d", mc.gets, mc.sets)
	}
}

func TestRunnerConcurrentUse(t *testing.T) {
	r := NewRunner(newMemCache(), nil, nil)
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := range 8 {
		wg.Add(1)
		go func(s uint64) {
			defer wg.Done()
			_, err := r.Execute(context.Background(), Options{Params: logo.Params{Seed: logo.Uint64(s % 3)}})
			errs <- err
		}(uint64(i))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("concurrent Execute: %v", err)
		}
	}
}

// memCache is an in-memory Cache that counts calls.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	gets int
	sets int
}

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.data[key] = data
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

var _ cache.Cache = (*memCache)(nil)

// Package cache stores rendered logos between runs.
//
// Generation is a pure function of the seed and parameters, so a rendered
// artifact can be reused whenever the same request comes in again. Keys
// are built by a [Keyer] from everything that affects the output.
//
// Backends:
//   - [NullCache]: never stores anything (--no-cache, tests)
//   - [FileCache]: JSON entries under the XDG cache directory (CLI default)
//   - [RedisCache]: shared cache for the HTTP server
//   - [MongoCache]: shared cache with server-side TTL expiry
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry. A miss is reported as
// (nil, false, nil); errors are reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// TTLs for cached data.
const (
	// TTLArtifact applies to rendered output. Output never goes stale for a
	// given key, so the TTL only bounds storage.
	TTLArtifact = 7 * 24 * time.Hour
)

// Keyer builds cache keys.
type Keyer interface {
	// LogoKey identifies a generated logo.
	LogoKey(opts LogoKeyOpts) string
	// ArtifactKey identifies one rendering of a logo.
	ArtifactKey(logoKey string, opts ArtifactKeyOpts) string
}

// LogoKeyOpts are the inputs that determine a logo.
type LogoKeyOpts struct {
	Seed       uint64  `json:"seed"`
	Theme      string  `json:"theme"`
	Shapes     int     `json:"shapes"`
	Density    int     `json:"density"`
	Opacity    float64 `json:"opacity"`
	Overlap    bool    `json:"overlap"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Candidates int     `json:"candidates"`
}

// ArtifactKeyOpts are the rendering inputs.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Scale      float64 `json:"scale,omitempty"`
	Background string  `json:"background,omitempty"`
	Boundary   string  `json:"boundary,omitempty"`
	Cells      bool    `json:"cells,omitempty"`
}

// DefaultKeyer hashes key options with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LogoKey implements Keyer.
func (DefaultKeyer) LogoKey(opts LogoKeyOpts) string {
	return hashKey("logo", opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(logoKey string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", logoKey, opts)
}

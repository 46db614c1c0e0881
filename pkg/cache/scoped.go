package cache

// ScopedKeyer prefixes every key from an inner Keyer. The shared backends
// (redis, mongo) use it to keep hexalith's keys in their own namespace and
// to invalidate everything when the generator version changes.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "hexalith:v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LogoKey generates a prefixed logo key.
func (k *ScopedKeyer) LogoKey(opts LogoKeyOpts) string {
	return k.prefix + k.inner.LogoKey(opts)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(logoKey string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(logoKey, opts)
}

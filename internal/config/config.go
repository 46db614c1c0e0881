// Package config loads the hexalith configuration file.
//
// The file is optional. Every field has a built-in default, and command
// line flags override whatever the file sets.
//
//	[defaults]
//	theme = "blues"
//	shapes = 4
//
//	[cache]
//	backend = "redis"
//
//	[redis]
//	addr = "localhost:6379"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/utensils/hexalith/pkg/errors"
	"github.com/utensils/hexalith/pkg/logo"
	"github.com/utensils/hexalith/pkg/palette"
	"github.com/utensils/hexalith/pkg/server"
)

const appName = "hexalith"

// Cache backends.
const (
	BackendFile  = "file"
	BackendNone  = "none"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

var backends = []string{BackendFile, BackendNone, BackendRedis, BackendMongo}

// Config mirrors the TOML file.
type Config struct {
	Defaults Defaults `toml:"defaults"`
	Cache    Cache    `toml:"cache"`
	Redis    Redis    `toml:"redis"`
	Mongo    Mongo    `toml:"mongo"`
	Server   Server   `toml:"server"`

	// Path is the file the config was read from, empty for built-ins.
	Path string `toml:"-"`
}

// Defaults are generation parameters used when a flag is not given.
type Defaults struct {
	Theme      string   `toml:"theme"`
	Shapes     int      `toml:"shapes"`
	GridSize   int      `toml:"grid_size"`
	Opacity    *float64 `toml:"opacity"`
	Overlap    *bool    `toml:"overlap"`
	Width      int      `toml:"width"`
	Height     int      `toml:"height"`
	Format     string   `toml:"format"`
	Candidates int      `toml:"candidates"`
}

type Cache struct {
	Backend  string `toml:"backend"`
	TTLHours int    `toml:"ttl_hours"`
	Dir      string `toml:"dir"`
}

type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type Mongo struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
// GridSize stays zero so logo.Params applies its own default.
func Default() *Config {
	return &Config{
		Defaults: Defaults{
			Theme:  palette.Default.String(),
			Shapes: logo.DefaultShapes,
			Width:  logo.DefaultWidth,
			Height: logo.DefaultHeight,
			Format: "svg",
		},
		Cache:  Cache{Backend: BackendFile, TTLHours: 24 * 7},
		Redis:  Redis{Addr: "localhost:6379"},
		Mongo:  Mongo{Database: appName, Collection: "cache"},
		Server: Server{Addr: server.DefaultAddr},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/hexalith/config.toml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads path over the built-in defaults. An empty path means
// DefaultPath; a missing default file is not an error, a missing explicit
// one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", path)
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that can be checked without generating.
func (c *Config) Validate() error {
	if c.Cache.Backend == "" {
		c.Cache.Backend = BackendFile
	}
	if err := errors.ValidateOneOf("cache.backend", c.Cache.Backend, backends); err != nil {
		return err
	}
	if c.Cache.TTLHours < 0 {
		return errors.InvalidParameter("cache.ttl_hours", "non-negative", c.Cache.TTLHours)
	}
	if _, err := palette.Parse(c.Defaults.Theme); err != nil {
		return err
	}
	return nil
}

// TTL returns the cache entry lifetime. Zero means entries never expire.
func (c *Config) TTL() time.Duration {
	return time.Duration(c.Cache.TTLHours) * time.Hour
}

// Params returns generation parameters seeded from [defaults].
func (c *Config) Params() logo.Params {
	d := c.Defaults
	return logo.Params{
		Theme:      d.Theme,
		Shapes:     d.Shapes,
		Density:    d.GridSize,
		Opacity:    d.Opacity,
		Overlap:    d.Overlap,
		Width:      d.Width,
		Height:     d.Height,
		Candidates: d.Candidates,
	}
}

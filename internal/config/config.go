package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/gol3d/internal/life"
)

const (
	DefaultPattern    = "reference"
	DefaultColPadding = 100
	DefaultRowPadding = life.ReferenceRowPadding
	DefaultInterval   = 100 * time.Millisecond
	DefaultCameraLead = 10.0
	DefaultTween      = time.Second
	DefaultFPS        = 30
	DefaultTheme      = "retro"
	DefaultMaxLayers  = 256
	DefaultDensity    = 0.2
)

// ErrInvalid marks a configuration that fails validation.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Pattern        string        `yaml:"pattern"`
	Random         RandomConfig  `yaml:"random"`
	RowPadding     int           `yaml:"row_padding"`
	ColPadding     int           `yaml:"col_padding"`
	Interval       time.Duration `yaml:"interval"`
	CameraLead     float64       `yaml:"camera_lead"`
	Tween          time.Duration `yaml:"tween"`
	FPS            int           `yaml:"fps"`
	Theme          string        `yaml:"theme"`
	MaxGenerations int           `yaml:"max_generations"`
	MaxLayers      int           `yaml:"max_layers"`
}

// RandomConfig replaces the named pattern with a random seed when Width and
// Height are both set.
type RandomConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Density float64 `yaml:"density"`
	Seed    int64   `yaml:"seed"`
}

func (r RandomConfig) Enabled() bool { return r.Width > 0 && r.Height > 0 }

// DefaultConfig is the classic browser layout: the reference seed
// framed by 100 columns and 5 rows, a generation every 100ms and a one
// second camera glide toward ten layers above the newest one.
func DefaultConfig() *Config {
	return &Config{
		Pattern:    DefaultPattern,
		Random:     RandomConfig{Density: DefaultDensity},
		RowPadding: DefaultRowPadding,
		ColPadding: DefaultColPadding,
		Interval:   DefaultInterval,
		CameraLead: DefaultCameraLead,
		Tween:      DefaultTween,
		FPS:        DefaultFPS,
		Theme:      DefaultTheme,
		MaxLayers:  DefaultMaxLayers,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base, so keys missing from the
// file keep base's values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "write config %s", path)
}

func (c *Config) Validate() error {
	switch {
	case c.RowPadding < 0 || c.ColPadding < 0:
		return errors.Wrapf(ErrInvalid, "padding must be non-negative, got rows=%d cols=%d", c.RowPadding, c.ColPadding)
	case c.Interval < 0:
		return errors.Wrapf(ErrInvalid, "interval must be non-negative, got %s", c.Interval)
	case c.Tween < 0:
		return errors.Wrapf(ErrInvalid, "tween must be non-negative, got %s", c.Tween)
	case c.FPS <= 0:
		return errors.Wrapf(ErrInvalid, "fps must be positive, got %d", c.FPS)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalid, "max_generations must be non-negative, got %d", c.MaxGenerations)
	case c.Random.Density < 0 || c.Random.Density > 1:
		return errors.Wrapf(ErrInvalid, "density must be within [0,1], got %f", c.Random.Density)
	case !c.Random.Enabled() && c.Pattern == "":
		return errors.Wrap(ErrInvalid, "either pattern or random size is required")
	}
	return nil
}

// Seed builds the padded initial grid described by c.
func (c *Config) Seed() (life.Grid, error) {
	var g life.Grid
	if c.Random.Enabled() {
		g = life.Random(c.Random.Height, c.Random.Width, c.Random.Density, c.Random.Seed)
	} else {
		p, err := life.LookupPattern(c.Pattern)
		if err != nil {
			return life.Grid{}, err
		}
		g = p.Grid
	}
	return life.Pad(g, c.RowPadding, c.ColPadding), nil
}

package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/san-kum/isoline/internal/contour"
	"github.com/san-kum/isoline/internal/field"
	"github.com/san-kum/isoline/internal/motion"
	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth     = 1024.0
	DefaultHeight    = 640.0
	DefaultSpacing   = 16.0
	DefaultThreshold = 1.0
	DefaultSources   = 8
	DefaultMinRadius = 5.0
	DefaultMaxRadius = 35.0
	DefaultMaxSpeed  = 10.0
	DefaultFrames    = 300
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Field     string       `yaml:"field"`
	Threshold float64      `yaml:"threshold"`
	Seed      int64        `yaml:"seed"`
	Frames    int          `yaml:"frames"`
	Saddle    string       `yaml:"saddle"`
	View      ViewConfig   `yaml:"view"`
	Grid      GridConfig   `yaml:"grid"`
	Sources   SourceConfig `yaml:"sources"`
	Heart     HeartConfig  `yaml:"heart"`
	Linear    LinearConfig `yaml:"linear"`
}

type ViewConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type GridConfig struct {
	Spacing float64 `yaml:"spacing"`
	ScaleX  float64 `yaml:"scale_x"`
	ScaleY  float64 `yaml:"scale_y"`
}

type SourceConfig struct {
	Count     int     `yaml:"count"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	MaxSpeed  float64 `yaml:"max_speed"`
}

type HeartConfig struct {
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
}

type LinearConfig struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
}

func DefaultConfig() *Config {
	return &Config{
		Field:     "metaballs",
		Threshold: DefaultThreshold,
		Seed:      1,
		Frames:    DefaultFrames,
		Saddle:    "independent",
		View:      ViewConfig{Width: DefaultWidth, Height: DefaultHeight},
		Grid:      GridConfig{Spacing: DefaultSpacing, ScaleX: 1, ScaleY: 1},
		Sources: SourceConfig{
			Count:     DefaultSources,
			MinRadius: DefaultMinRadius,
			MaxRadius: DefaultMaxRadius,
			MaxSpeed:  DefaultMaxSpeed,
		},
		Heart: HeartConfig{CenterX: 2, CenterY: 2},
	}
}

// SetField switches the field kind and, when the kind changes, resets the
// sampling scale and field parameters to values that put a contour inside
// the current view. The heart curve spans [0, 4] in both axes; the linear
// field crosses the threshold along the view diagonal.
func (c *Config) SetField(kind string) {
	if kind == c.Field {
		return
	}
	c.Field = kind
	c.Grid.ScaleX, c.Grid.ScaleY = 1, 1
	switch kind {
	case "heart":
		c.Grid.ScaleX, c.Grid.ScaleY = 4/c.View.Width, 4/c.View.Height
		c.Heart = HeartConfig{CenterX: 2, CenterY: 2}
	case "linear":
		c.Linear = LinearConfig{A: c.Threshold / c.View.Width, B: c.Threshold / c.View.Height}
		if c.Threshold == 0 {
			c.Linear = LinearConfig{A: 1, C: -c.View.Width / 2}
		}
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects setups that cannot produce a grid or a field. It runs
// once before an engine is built.
func (c *Config) Validate() error {
	if _, err := field.New(c.Field, field.Params{}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := contour.ParseSaddleMode(c.Saddle); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !finite(c.Threshold) {
		return fmt.Errorf("%w: threshold must be finite, got %v", ErrInvalidConfig, c.Threshold)
	}
	if !(c.View.Width > 0) || !(c.View.Height > 0) {
		return fmt.Errorf("%w: view must be positive, got %vx%v", ErrInvalidConfig, c.View.Width, c.View.Height)
	}
	if !(c.Grid.Spacing > 0) {
		return fmt.Errorf("%w: grid spacing must be positive, got %v", ErrInvalidConfig, c.Grid.Spacing)
	}
	if c.Grid.ScaleX == 0 || c.Grid.ScaleY == 0 || !finite(c.Grid.ScaleX) || !finite(c.Grid.ScaleY) {
		return fmt.Errorf("%w: grid scale must be finite and non-zero", ErrInvalidConfig)
	}
	if cols, rows := c.GridSize(); cols < 2 || rows < 2 {
		return fmt.Errorf("%w: grid of %dx%d points has no cells", ErrInvalidConfig, cols, rows)
	}
	if c.Frames < 1 {
		return fmt.Errorf("%w: frames must be positive, got %d", ErrInvalidConfig, c.Frames)
	}
	if c.Field == "linear" && c.Linear.A == 0 && c.Linear.B == 0 {
		return fmt.Errorf("%w: linear field needs a non-zero gradient", ErrInvalidConfig)
	}
	if c.Field == "metaballs" {
		s := c.Sources
		if s.Count < 0 {
			return fmt.Errorf("%w: source count must not be negative, got %d", ErrInvalidConfig, s.Count)
		}
		if !(s.MinRadius > 0) || s.MaxRadius < s.MinRadius {
			return fmt.Errorf("%w: radius range [%v, %v) is empty", ErrInvalidConfig, s.MinRadius, s.MaxRadius)
		}
		if s.MaxSpeed < 1 {
			return fmt.Errorf("%w: max speed must be at least 1, got %v", ErrInvalidConfig, s.MaxSpeed)
		}
	}
	return nil
}

// GridSize derives the lattice from the view and the spacing, one point per
// whole spacing step across the view.
func (c *Config) GridSize() (cols, rows int) {
	if !(c.Grid.Spacing > 0) {
		return 0, 0
	}
	return int(c.View.Width / c.Grid.Spacing), int(c.View.Height / c.Grid.Spacing)
}

func (c *Config) Bounds() r2.Box {
	return r2.Box{Max: r2.Vec{X: c.View.Width, Y: c.View.Height}}
}

func (c *Config) Ranges() motion.Ranges {
	return motion.Ranges{
		MinRadius: c.Sources.MinRadius,
		MaxRadius: c.Sources.MaxRadius,
		MaxSpeed:  c.Sources.MaxSpeed,
	}
}

func (c *Config) SaddleMode() contour.SaddleMode {
	m, _ := contour.ParseSaddleMode(c.Saddle)
	return m
}

func (c *Config) FieldParams(sources []field.PointSource) field.Params {
	return field.Params{
		Sources: sources,
		Center:  r2.Vec{X: c.Heart.CenterX, Y: c.Heart.CenterY},
		A:       c.Linear.A,
		B:       c.Linear.B,
		C:       c.Linear.C,
	}
}

func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/shapemorph/internal/morph"
	"github.com/san-kum/shapemorph/internal/shape"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth         = 240
	DefaultHeight        = 240
	DefaultScale         = 4
	DefaultFPS           = 60
	DefaultMorphSpeed    = 0.005
	DefaultHoldIncrement = 0.01
	DefaultHoldDuration  = 2.0
	DefaultPerspective   = 200.0
	DefaultRotationSpeed = 1.0
	DefaultRotationStep  = 1.0 / DefaultFPS
	DefaultTableSize     = 377
)

// Rotation modes.
const (
	RotationClock = "clock"
	RotationPhase = "phase"
	RotationTable = "table"
)

// Rotation kinds.
const (
	KindEuler      = "euler"
	KindQuaternion = "quaternion"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Morph      MorphConfig      `yaml:"morph"`
	Rotation   RotationConfig   `yaml:"rotation"`
	Projection ProjectionConfig `yaml:"projection"`
	Sphere     SphereConfig     `yaml:"sphere"`
	Torus      TorusConfig      `yaml:"torus"`
	Background string           `yaml:"background"`
}

type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"`
	FPS    int `yaml:"fps"`
}

type MorphConfig struct {
	Speed         float64 `yaml:"speed"`
	HoldIncrement float64 `yaml:"hold_increment"`
	HoldDuration  float64 `yaml:"hold_duration"`
}

type RotationConfig struct {
	Mode      string  `yaml:"mode"`
	Kind      string  `yaml:"kind"`
	Speed     float64 `yaml:"speed"`
	Step      float64 `yaml:"step"`
	TableSize int     `yaml:"table_size"`
}

type ProjectionConfig struct {
	Perspective float64 `yaml:"perspective"`
}

type SphereConfig struct {
	Radius     float64 `yaml:"radius"`
	Horizontal int     `yaml:"horizontal"`
	Vertical   int     `yaml:"vertical"`
	Color      string  `yaml:"color"`
}

type TorusConfig struct {
	RingRadius float64 `yaml:"ring_radius"`
	TubeRadius float64 `yaml:"tube_radius"`
	Horizontal int     `yaml:"horizontal"`
	Vertical   int     `yaml:"vertical"`
	Color      string  `yaml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Scale:  DefaultScale,
			FPS:    DefaultFPS,
		},
		Morph: MorphConfig{
			Speed:         DefaultMorphSpeed,
			HoldIncrement: DefaultHoldIncrement,
			HoldDuration:  DefaultHoldDuration,
		},
		Rotation: RotationConfig{
			Mode:      RotationClock,
			Kind:      KindEuler,
			Speed:     DefaultRotationSpeed,
			Step:      DefaultRotationStep,
			TableSize: DefaultTableSize,
		},
		Projection: ProjectionConfig{Perspective: DefaultPerspective},
		Sphere: SphereConfig{
			Radius:     100,
			Horizontal: 40,
			Vertical:   20,
			Color:      shape.DarkGreen.Hex(),
		},
		Torus: TorusConfig{
			RingRadius: 70,
			TubeRadius: 30,
			Horizontal: 40,
			Vertical:   20,
			Color:      shape.Maroon.Hex(),
		},
		Background: shape.Black.Hex(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
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

// Validate checks everything the engine relies on before the first frame.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.Screen.Scale > 0, "scale must be positive, got %d", c.Screen.Scale)
	check(c.Screen.FPS > 0, "fps must be positive, got %d", c.Screen.FPS)
	check(c.Morph.Speed > 0 && c.Morph.Speed <= 1, "morph speed must be in (0, 1], got %g", c.Morph.Speed)
	check(c.Morph.HoldIncrement > 0, "hold increment must be positive, got %g", c.Morph.HoldIncrement)
	check(c.Morph.HoldDuration >= 0, "hold duration must not be negative, got %g", c.Morph.HoldDuration)
	check(c.Projection.Perspective > 0, "perspective must be positive, got %g", c.Projection.Perspective)
	check(c.Sphere.Horizontal > 0 && c.Sphere.Vertical > 0, "sphere samples must be positive, got %dx%d", c.Sphere.Horizontal, c.Sphere.Vertical)
	check(c.Torus.Horizontal > 0 && c.Torus.Vertical > 0, "torus samples must be positive, got %dx%d", c.Torus.Horizontal, c.Torus.Vertical)
	check(c.Sphere.Horizontal == c.Torus.Horizontal && c.Sphere.Vertical == c.Torus.Vertical,
		"sphere and torus samples must match, got %dx%d and %dx%d",
		c.Sphere.Horizontal, c.Sphere.Vertical, c.Torus.Horizontal, c.Torus.Vertical)

	switch c.Rotation.Mode {
	case RotationClock, RotationPhase:
	case RotationTable:
		check(c.Rotation.TableSize > 0, "table size must be positive, got %d", c.Rotation.TableSize)
	default:
		errs = append(errs, fmt.Errorf("unknown rotation mode %q", c.Rotation.Mode))
	}
	switch c.Rotation.Kind {
	case KindEuler, KindQuaternion:
	default:
		errs = append(errs, fmt.Errorf("unknown rotation kind %q", c.Rotation.Kind))
	}

	for name, hex := range map[string]string{"sphere": c.Sphere.Color, "torus": c.Torus.Color, "background": c.Background} {
		if _, err := shape.ParseHex(hex); err != nil {
			errs = append(errs, fmt.Errorf("%s color: %w", name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// MorphParams converts the timing section for the state machine.
func (c *Config) MorphParams() morph.Params {
	return morph.Params{
		MorphSpeed:    c.Morph.Speed,
		HoldIncrement: c.Morph.HoldIncrement,
		HoldDuration:  c.Morph.HoldDuration,
		RotationStep:  c.Rotation.Step,
	}
}

// Colors parses the sphere, torus and background colors.
func (c *Config) Colors() (sphere, torus, background shape.Color, err error) {
	if sphere, err = shape.ParseHex(c.Sphere.Color); err != nil {
		return
	}
	if torus, err = shape.ParseHex(c.Torus.Color); err != nil {
		return
	}
	background, err = shape.ParseHex(c.Background)
	return
}

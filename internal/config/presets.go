package config

import "sort"

// Presets override parts of DefaultConfig.
var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"fast": func(c *Config) {
		c.Morph.Speed = 0.02
		c.Morph.HoldDuration = 0.5
		c.Rotation.Speed = 2.5
	},
	"dense": func(c *Config) {
		c.Sphere.Horizontal, c.Sphere.Vertical = 120, 60
		c.Torus.Horizontal, c.Torus.Vertical = 120, 60
	},
	"terminal": func(c *Config) {
		c.Screen.Width, c.Screen.Height = 160, 96
		c.Screen.FPS = 30
		c.Rotation.Step = 1.0 / 30
	},
	"tabled": func(c *Config) {
		c.Rotation.Mode = RotationTable
		c.Rotation.Kind = KindQuaternion
	},
}

// GetPreset returns a fresh config with the preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

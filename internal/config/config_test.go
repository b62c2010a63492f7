package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Screen.Width != 240 || cfg.Screen.Height != 240 {
		t.Errorf("expected 240x240, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Projection.Perspective != 200 {
		t.Errorf("expected perspective 200, got %f", cfg.Projection.Perspective)
	}
	if cfg.Sphere.Color != "#00752c" || cfg.Torus.Color != "#be2137" {
		t.Errorf("unexpected colors %s / %s", cfg.Sphere.Color, cfg.Torus.Color)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Screen.Width = 0 }, "screen"},
		{"zero fps", func(c *Config) { c.Screen.FPS = 0 }, "fps"},
		{"morph speed too large", func(c *Config) { c.Morph.Speed = 2 }, "morph speed"},
		{"zero perspective", func(c *Config) { c.Projection.Perspective = 0 }, "perspective"},
		{"sample mismatch", func(c *Config) { c.Torus.Vertical = 10 }, "must match"},
		{"unknown mode", func(c *Config) { c.Rotation.Mode = "spin" }, "rotation mode"},
		{"unknown kind", func(c *Config) { c.Rotation.Kind = "axis" }, "rotation kind"},
		{"empty table", func(c *Config) { c.Rotation.Mode, c.Rotation.TableSize = RotationTable, 0 }, "table size"},
		{"bad color", func(c *Config) { c.Background = "black" }, "background color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected %q in %q", tt.want, err.Error())
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "morph.yaml")

	cfg := DefaultConfig()
	cfg.Rotation.Mode = RotationTable
	cfg.Morph.HoldDuration = 3.5
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n%+v\n%+v", loaded, cfg)
	}
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := "morph:\n  speed: 0.01\nrotation:\n  kind: quaternion\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Morph.Speed != 0.01 {
		t.Errorf("expected speed 0.01, got %f", cfg.Morph.Speed)
	}
	if cfg.Rotation.Kind != KindQuaternion {
		t.Errorf("expected quaternion, got %s", cfg.Rotation.Kind)
	}
	if cfg.Morph.HoldDuration != DefaultHoldDuration {
		t.Errorf("unset fields should keep defaults, got hold %f", cfg.Morph.HoldDuration)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("screen: [1, 2"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("tabled")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Rotation.Mode != RotationTable {
		t.Errorf("expected table mode, got %s", cfg.Rotation.Mode)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}

	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s does not validate: %v", name, err)
		}
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}

func TestMorphParams(t *testing.T) {
	cfg := DefaultConfig()
	p := cfg.MorphParams()
	if p.MorphSpeed != DefaultMorphSpeed || p.HoldDuration != DefaultHoldDuration {
		t.Errorf("unexpected params %+v", p)
	}

	sphere, torus, bg, err := cfg.Colors()
	if err != nil {
		t.Fatal(err)
	}
	if sphere == torus || bg.R != 0 || bg.A != 1 {
		t.Errorf("unexpected colors %v %v %v", sphere, torus, bg)
	}
}

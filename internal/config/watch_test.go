package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapemorph.yaml")
	if err := Save(path, DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("morph: {speed: -1}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	next := DefaultConfig()
	next.Morph.Speed = 0.02
	if err := Save(path, next); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for got := false; !got; {
		select {
		case cfg := <-updates:
			if cfg.Morph.Speed <= 0 {
				t.Fatalf("invalid config delivered: speed %g", cfg.Morph.Speed)
			}
			got = cfg.Morph.Speed == 0.02
		case <-timeout:
			t.Fatal("no reload within 5s")
		}
	}

	cancel()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-updates:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}

func TestWatchMissingDir(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "c.yaml"))
	if err == nil {
		t.Error("expected error for missing directory")
	}
}

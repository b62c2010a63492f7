package engine

import (
	"context"
	"time"
)

// Clock supplies elapsed seconds and paces frames.
type Clock interface {
	Elapsed() float64
	Wait(ctx context.Context) error
}

// WallClock paces at a fixed rate against the monotonic clock.
type WallClock struct {
	start  time.Time
	ticker *time.Ticker
}

func NewWallClock(fps int) *WallClock {
	if fps <= 0 {
		fps = 60
	}
	return &WallClock{
		start:  time.Now(),
		ticker: time.NewTicker(time.Second / time.Duration(fps)),
	}
}

func (c *WallClock) Elapsed() float64 { return time.Since(c.start).Seconds() }

func (c *WallClock) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ticker.C:
		return nil
	}
}

func (c *WallClock) Stop() { c.ticker.Stop() }

// FixedClock advances by exactly one frame per Wait and never sleeps.
type FixedClock struct {
	fps    int
	frames int
}

func NewFixedClock(fps int) *FixedClock {
	if fps <= 0 {
		fps = 60
	}
	return &FixedClock{fps: fps}
}

func (c *FixedClock) Elapsed() float64 { return float64(c.frames) / float64(c.fps) }

func (c *FixedClock) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.Advance()
	return nil
}

func (c *FixedClock) Advance()    { c.frames++ }
func (c *FixedClock) Frames() int { return c.frames }
func (c *FixedClock) Reset()      { c.frames = 0 }

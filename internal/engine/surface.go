package engine

import (
	"github.com/san-kum/shapemorph/internal/morph"
	"github.com/san-kum/shapemorph/internal/render"
)

// Surface presents completed frames.
type Surface interface {
	Present(fb *render.FrameBuffer) error
	ShouldClose() bool
}

// FrameStats describes one completed frame.
type FrameStats struct {
	Frame     int
	Elapsed   float64
	Morph     morph.Sample
	Drawn     int
	Discarded int
}

type Observer interface {
	OnFrame(s FrameStats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(FrameStats)

func (f ObserverFunc) OnFrame(s FrameStats) { f(s) }

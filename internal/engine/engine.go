package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/san-kum/shapemorph/internal/config"
	"github.com/san-kum/shapemorph/internal/morph"
	"github.com/san-kum/shapemorph/internal/render"
	"github.com/san-kum/shapemorph/internal/shape"
)

type rotator func(st *morph.State, elapsed float64) render.Rotation

type Engine struct {
	cfg        *config.Config
	pair       *shape.MorphPair
	state      *morph.State
	projector  render.Projector
	fb         *render.FrameBuffer
	background shape.Color
	rotate     rotator
	observers  []Observer
	frames     int
}

// New generates both shapes from cfg and builds an engine around them.
func New(cfg *config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sphereColor, torusColor, _, err := cfg.Colors()
	if err != nil {
		return nil, err
	}

	sphere := shape.Shape{
		Points: shape.GenerateSphere(cfg.Sphere.Radius, cfg.Sphere.Horizontal, cfg.Sphere.Vertical),
		Color:  sphereColor,
	}
	torus := shape.Shape{
		Points: shape.GenerateTorus(cfg.Torus.RingRadius, cfg.Torus.TubeRadius, cfg.Torus.Horizontal, cfg.Torus.Vertical),
		Color:  torusColor,
	}
	pair, err := shape.NewMorphPair(sphere, torus)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return NewWithPair(cfg, pair)
}

// NewWithPair uses cfg for everything except geometry and colors.
func NewWithPair(cfg *config.Config, pair *shape.MorphPair) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if pair == nil {
		return nil, fmt.Errorf("engine: %w", shape.ErrEmptyShape)
	}
	_, _, bg, err := cfg.Colors()
	if err != nil {
		return nil, err
	}

	proj := render.Projector{
		Width:       cfg.Screen.Width,
		Height:      cfg.Screen.Height,
		Perspective: cfg.Projection.Perspective,
	}
	return &Engine{
		cfg:        cfg,
		pair:       pair,
		state:      morph.New(cfg.MorphParams()),
		projector:  proj,
		fb:         render.NewFrameBuffer(cfg.Screen.Width, cfg.Screen.Height),
		background: bg,
		rotate:     newRotator(cfg.Rotation),
	}, nil
}

func newRotator(rc config.RotationConfig) rotator {
	build := func(a float64) render.Rotation {
		if rc.Kind == config.KindQuaternion {
			return render.EulerQuaternion(a, a, a)
		}
		return render.EulerMatrix(a, a, a)
	}

	switch rc.Mode {
	case config.RotationTable:
		table := render.NewRotationTable(rc.TableSize, build)
		return func(st *morph.State, _ float64) render.Rotation { return table.At(st.Step) }
	case config.RotationPhase:
		return func(st *morph.State, _ float64) render.Rotation { return build(st.Phase) }
	default:
		speed := rc.Speed
		return func(_ *morph.State, elapsed float64) render.Rotation {
			return build(math.Mod(elapsed*speed, 2*math.Pi))
		}
	}
}

func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

func (e *Engine) Config() *config.Config      { return e.cfg }
func (e *Engine) Pair() *shape.MorphPair      { return e.pair }
func (e *Engine) State() morph.Sample         { return e.state.Snapshot() }
func (e *Engine) Buffer() *render.FrameBuffer { return e.fb }
func (e *Engine) Background() shape.Color     { return e.background }
func (e *Engine) Frames() int                 { return e.frames }

// Reset returns the morph state to its initial sphere hold.
func (e *Engine) Reset() {
	e.state.Reset()
	e.frames = 0
	e.fb.Clear(e.background)
}

// Frame renders one frame for the given elapsed time and returns the buffer.
// The buffer is reused by the next call.
func (e *Engine) Frame(elapsed float64) *render.FrameBuffer {
	e.fb.Clear(e.background)
	e.state.Tick()
	rot := e.rotate(e.state, elapsed)

	t := e.state.Factor
	c := e.pair.Color(t)
	stats := FrameStats{Frame: e.frames, Elapsed: elapsed}
	for i := 0; i < e.pair.Len(); i++ {
		x, y, ok := e.projector.Project(e.pair.Vertex(i, t), rot)
		if !ok {
			stats.Discarded++
			continue
		}
		e.fb.Set(x, y, c)
		stats.Drawn++
	}
	e.frames++

	stats.Morph = e.state.Snapshot()
	for _, o := range e.observers {
		o.OnFrame(stats)
	}
	return e.fb
}

// Run loops until ctx is done or the surface asks to close.
func (e *Engine) Run(ctx context.Context, s Surface, c Clock) error {
	slog.Info("engine started",
		"vertices", e.pair.Len(),
		"width", e.cfg.Screen.Width,
		"height", e.cfg.Screen.Height,
		"rotation", e.cfg.Rotation.Mode,
		"kind", e.cfg.Rotation.Kind)

	logEvery := e.cfg.Screen.FPS
	for {
		select {
		case <-ctx.Done():
			slog.Info("engine stopped", "frames", e.frames, "reason", ctx.Err())
			return ctx.Err()
		default:
		}
		if s.ShouldClose() {
			slog.Info("engine stopped", "frames", e.frames, "reason", "surface closed")
			return nil
		}

		elapsed := c.Elapsed()
		fb := e.Frame(elapsed)
		if err := s.Present(fb); err != nil {
			return fmt.Errorf("engine: present frame %d: %w", e.frames-1, err)
		}
		if e.frames%logEvery == 0 {
			st := e.state.Snapshot()
			slog.Debug("frame", "n", e.frames, "elapsed", elapsed, "factor", st.Factor, "hold", st.Hold, "forward", st.Forward)
		}

		if err := c.Wait(ctx); err != nil {
			slog.Info("engine stopped", "frames", e.frames, "reason", err)
			return err
		}
	}
}

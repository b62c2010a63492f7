// Package morph holds the per-frame state machine behind the sphere/torus
// animation: morph progress, endpoint holds and rotation phase.
package morph

import "math"

const twoPi = 2 * math.Pi

// Params are the fixed per-frame increments.
type Params struct {
	MorphSpeed    float64
	HoldIncrement float64
	HoldDuration  float64
	RotationStep  float64
}

// State cycles hold-at-sphere → morph-to-torus → hold-at-torus →
// morph-to-sphere. Factor 0 is the sphere, 1 the torus.
type State struct {
	Phase   float64
	Factor  float64
	Hold    float64
	Forward bool
	Step    int

	params Params
}

// Sample is a copy of the state taken after a tick.
type Sample struct {
	Step    int
	Phase   float64
	Factor  float64
	Hold    float64
	Forward bool
}

func New(p Params) *State {
	return &State{params: p}
}

func (s *State) Params() Params { return s.params }

// Tick advances the state by one frame.
func (s *State) Tick() {
	if s.Forward {
		s.Factor += s.params.MorphSpeed
	} else {
		s.Factor -= s.params.MorphSpeed
	}
	s.Factor = clamp01(s.Factor)

	if s.Holding() {
		s.Hold += s.params.HoldIncrement
		if s.Hold >= s.params.HoldDuration {
			// Factor stays on its boundary; the next tick moves it away.
			s.Forward = !s.Forward
			s.Hold = 0
		}
	}

	s.Phase = math.Mod(s.Phase+s.params.RotationStep, twoPi)
	if s.Phase < 0 {
		s.Phase += twoPi
	}
	s.Step++
}

// Holding reports whether the factor is pinned at an endpoint.
func (s *State) Holding() bool {
	return s.Factor == 0 || s.Factor == 1
}

// Reset returns to the initial sphere hold.
func (s *State) Reset() {
	*s = State{params: s.params}
}

func (s *State) Snapshot() Sample {
	return Sample{Step: s.Step, Phase: s.Phase, Factor: s.Factor, Hold: s.Hold, Forward: s.Forward}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package engine

// Trace keeps the most recent frame stats.
type Trace struct {
	Samples []FrameStats
	limit   int
}

// NewTrace keeps at most limit samples; limit <= 0 keeps everything.
func NewTrace(limit int) *Trace {
	capacity := limit
	if capacity <= 0 {
		capacity = 256
	}
	return &Trace{Samples: make([]FrameStats, 0, capacity), limit: limit}
}

func (t *Trace) OnFrame(s FrameStats) {
	t.Samples = append(t.Samples, s)
	if t.limit > 0 && len(t.Samples) > t.limit {
		t.Samples = t.Samples[1:]
	}
}

func (t *Trace) Factors() []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = s.Morph.Factor
	}
	return out
}

// Flips counts direction changes in the trace.
func (t *Trace) Flips() int {
	n := 0
	for i := 1; i < len(t.Samples); i++ {
		if t.Samples[i].Morph.Forward != t.Samples[i-1].Morph.Forward {
			n++
		}
	}
	return n
}

func (t *Trace) Reset() { t.Samples = t.Samples[:0] }

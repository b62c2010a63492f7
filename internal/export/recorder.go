package export

import "github.com/san-kum/shapemorph/internal/render"

// Recorder is a headless surface that closes after a fixed number of frames
// and optionally feeds every n-th frame to a GIF.
type Recorder struct {
	limit  int
	frames int
	gif    *GIFRecorder
	every  int
}

func NewRecorder(limit int, g *GIFRecorder, every int) *Recorder {
	if every < 1 {
		every = 1
	}
	return &Recorder{limit: limit, gif: g, every: every}
}

func (r *Recorder) Present(fb *render.FrameBuffer) error {
	if r.gif != nil && r.frames%r.every == 0 {
		r.gif.Capture(fb)
	}
	r.frames++
	return nil
}

func (r *Recorder) ShouldClose() bool { return r.limit > 0 && r.frames >= r.limit }

func (r *Recorder) Frames() int { return r.frames }

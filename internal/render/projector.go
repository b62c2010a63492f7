package render

import (
	"math"

	"github.com/san-kum/shapemorph/internal/shape"
)

// Projector maps model space to pixels with divisor = Perspective - z.
// It is not a camera model: a larger rotated z means a smaller divisor and
// a larger on-screen offset.
type Projector struct {
	Width, Height int
	Perspective   float64
}

// Center is the viewport middle, also used as the projection scale.
func (p Projector) Center() (float64, float64) {
	return float64(p.Width / 2), float64(p.Height / 2)
}

// Project rotates v and returns its pixel, or ok=false when the point must
// be discarded.
func (p Projector) Project(v shape.Vec3, rot Rotation) (x, y int, ok bool) {
	r := rot.Apply(v)
	div := p.Perspective - r.Z
	if !(div > 0) || math.IsInf(div, 0) {
		return 0, 0, false
	}

	cx, cy := p.Center()
	sx := r.X/div*cx + cx
	sy := r.Y/div*cy + cy

	// Rejects NaN and ±Inf too.
	if !(sx >= 0 && sx < float64(p.Width)) || !(sy >= 0 && sy < float64(p.Height)) {
		return 0, 0, false
	}
	return int(sx), int(sy), true
}

// Point interpolates vertex i of the pair by factor t and projects it.
func (p Projector) Point(pair *shape.MorphPair, i int, t float64, rot Rotation) (int, int, shape.Color, bool) {
	v, c := pair.At(i, t)
	x, y, ok := p.Project(v, rot)
	return x, y, c, ok
}

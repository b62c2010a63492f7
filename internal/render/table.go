package render

import "math"

// RotationTable holds n rotations for the angles k·2π/n and is looked up by
// an integer frame step, so a lookup never depends on float equality.
type RotationTable struct {
	rots []Rotation
}

// NewRotationTable precomputes build(angle) for every slot.
func NewRotationTable(n int, build func(angle float64) Rotation) *RotationTable {
	if n < 1 {
		n = 1
	}
	t := &RotationTable{rots: make([]Rotation, n)}
	for i := 0; i < n; i++ {
		t.rots[i] = build(float64(i) * 2 * math.Pi / float64(n))
	}
	return t
}

func (t *RotationTable) Len() int { return len(t.rots) }

// At wraps step into the table, including negative steps.
func (t *RotationTable) At(step int) Rotation {
	n := len(t.rots)
	i := step % n
	if i < 0 {
		i += n
	}
	return t.rots[i]
}

package shape

type Shape struct {
	Points []Vec3
	Color  Color
}

// MorphPair holds two index-matched shapes. Build it with NewMorphPair.
type MorphPair struct {
	from, to Shape
}

// NewMorphPair checks that both shapes are non-empty and have the same
// number of vertices.
func NewMorphPair(from, to Shape) (*MorphPair, error) {
	if len(from.Points) == 0 || len(to.Points) == 0 {
		return nil, ErrEmptyShape
	}
	if len(from.Points) != len(to.Points) {
		return nil, &MismatchError{From: len(from.Points), To: len(to.Points)}
	}
	return &MorphPair{from: from, to: to}, nil
}

func (p *MorphPair) Len() int    { return len(p.from.Points) }
func (p *MorphPair) From() Shape { return p.from }
func (p *MorphPair) To() Shape   { return p.to }

// At returns vertex i and the pair color interpolated by t.
func (p *MorphPair) At(i int, t float64) (Vec3, Color) {
	return p.Vertex(i, t), p.Color(t)
}

func (p *MorphPair) Vertex(i int, t float64) Vec3 {
	return p.from.Points[i].Lerp(p.to.Points[i], t)
}

// Color is the same for every vertex of a frame.
func (p *MorphPair) Color(t float64) Color {
	return p.from.Color.Lerp(p.to.Color, t)
}

package render

import (
	"image/color"
	"testing"

	"github.com/san-kum/shapemorph/internal/shape"
	"github.com/stretchr/testify/assert"
)

func TestFrameBufferSetAndClear(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	fb.Clear(shape.Black)
	assert.Equal(t, 0, fb.Count(shape.Black))

	assert.True(t, fb.Set(3, 2, shape.Maroon))
	assert.Equal(t, shape.Maroon, fb.At(3, 2))
	assert.Equal(t, shape.Maroon, fb.Pixels()[2*4+3])

	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		assert.False(t, fb.Set(xy[0], xy[1], shape.White), "write at %v", xy)
	}
	assert.Equal(t, 1, fb.Count(shape.Black))
	assert.Equal(t, shape.Color{}, fb.At(10, 10))

	fb.Clear(shape.Black)
	assert.Equal(t, 0, fb.Count(shape.Black))
}

func TestFrameBufferLaterWriteWins(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.Set(1, 1, shape.DarkGreen)
	fb.Set(1, 1, shape.Maroon)
	assert.Equal(t, shape.Maroon, fb.At(1, 1))
}

func TestFrameBufferConversion(t *testing.T) {
	fb := NewFrameBuffer(3, 2)
	fb.Clear(shape.Black)
	fb.Set(2, 1, shape.Maroon)

	px := fb.RGBA(nil)
	assert.Len(t, px, 6)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, px[0])
	assert.Equal(t, color.RGBA{190, 33, 55, 255}, px[5])

	reused := fb.RGBA(px[:0])
	assert.Equal(t, px, reused)

	img := fb.Image()
	assert.Equal(t, color.RGBA{190, 33, 55, 255}, img.RGBAAt(2, 1))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(0, 0))
}

func TestFrameBufferNegativeSize(t *testing.T) {
	fb := NewFrameBuffer(-3, 5)
	assert.Equal(t, 0, fb.Width)
	assert.Empty(t, fb.Pixels())
	assert.False(t, fb.Set(0, 0, shape.White))
}

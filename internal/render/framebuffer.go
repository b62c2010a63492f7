package render

import (
	"image"
	"image/color"

	"github.com/san-kum/shapemorph/internal/shape"
)

// FrameBuffer is a row-major grid of colors.
type FrameBuffer struct {
	Width, Height int
	pix           []shape.Color
}

func NewFrameBuffer(w, h int) *FrameBuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &FrameBuffer{Width: w, Height: h, pix: make([]shape.Color, w*h)}
}

// Clear sets every cell to c.
func (f *FrameBuffer) Clear(c shape.Color) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

func (f *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.Width && y < f.Height
}

// Set writes c at (x, y) and reports whether the write happened.
func (f *FrameBuffer) Set(x, y int, c shape.Color) bool {
	if !f.inBounds(x, y) {
		return false
	}
	f.pix[y*f.Width+x] = c
	return true
}

// At returns the zero Color outside the buffer.
func (f *FrameBuffer) At(x, y int) shape.Color {
	if !f.inBounds(x, y) {
		return shape.Color{}
	}
	return f.pix[y*f.Width+x]
}

// Pixels exposes the backing slice; callers must not keep it across frames.
func (f *FrameBuffer) Pixels() []shape.Color { return f.pix }

// Count returns the number of cells that differ from bg.
func (f *FrameBuffer) Count(bg shape.Color) int {
	n := 0
	for _, c := range f.pix {
		if c != bg {
			n++
		}
	}
	return n
}

// RGBA converts into dst, growing it when it is too short.
func (f *FrameBuffer) RGBA(dst []color.RGBA) []color.RGBA {
	if cap(dst) < len(f.pix) {
		dst = make([]color.RGBA, len(f.pix))
	}
	dst = dst[:len(f.pix)]
	for i, c := range f.pix {
		dst[i] = c.RGBA()
	}
	return dst
}

// Image copies the buffer into a new RGBA image.
func (f *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i, c := range f.pix {
		rgba := c.RGBA()
		j := i * 4
		img.Pix[j+0] = rgba.R
		img.Pix[j+1] = rgba.G
		img.Pix[j+2] = rgba.B
		img.Pix[j+3] = rgba.A
	}
	return img
}

package export

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"

	"github.com/san-kum/shapemorph/internal/render"
	"github.com/san-kum/shapemorph/internal/shape"
	"golang.org/x/image/draw"
)

// MorphPalette covers the background plus 255 steps between the two shape
// colors, which is every color a morph frame can contain.
func MorphPalette(bg, from, to shape.Color) color.Palette {
	p := make(color.Palette, 0, 256)
	p = append(p, bg.RGBA())
	for i := 0; i < 255; i++ {
		p = append(p, from.Lerp(to, float64(i)/254).RGBA())
	}
	return p
}

// GIFRecorder accumulates frames for an animated GIF.
type GIFRecorder struct {
	palette color.Palette
	scale   int
	delay   int
	frames  []*image.Paletted
	scratch *image.RGBA
}

// NewGIFRecorder upscales every frame by scale and shows each for
// delay hundredths of a second.
func NewGIFRecorder(p color.Palette, scale, delay int) *GIFRecorder {
	if scale < 1 {
		scale = 1
	}
	if delay < 1 {
		delay = 1
	}
	return &GIFRecorder{palette: p, scale: scale, delay: delay}
}

// DelayFor converts a frame rate into GIF delay units.
func DelayFor(fps int) int {
	if fps <= 0 {
		return 2
	}
	d := (100 + fps/2) / fps
	if d < 1 {
		d = 1
	}
	return d
}

func (g *GIFRecorder) Capture(fb *render.FrameBuffer) {
	src := fb.Image()
	dst := image.NewPaletted(image.Rect(0, 0, fb.Width*g.scale, fb.Height*g.scale), g.palette)
	if g.scale == 1 {
		draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)
	} else {
		if g.scratch == nil || g.scratch.Bounds() != dst.Bounds() {
			g.scratch = image.NewRGBA(dst.Bounds())
		}
		draw.NearestNeighbor.Scale(g.scratch, g.scratch.Bounds(), src, src.Bounds(), draw.Src, nil)
		draw.Draw(dst, dst.Bounds(), g.scratch, image.Point{}, draw.Src)
	}
	g.frames = append(g.frames, dst)
}

func (g *GIFRecorder) Len() int { return len(g.frames) }

func (g *GIFRecorder) Reset() { g.frames = g.frames[:0] }

func (g *GIFRecorder) Encode(w io.Writer) error {
	if len(g.frames) == 0 {
		return fmt.Errorf("export: no frames recorded")
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, g.delay)
	}
	return gif.EncodeAll(w, &anim)
}

func (g *GIFRecorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

package shape

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an RGBA value with every channel in [0, 1].
type Color struct {
	R, G, B, A float64
}

var (
	Black     = Color{0, 0, 0, 1}
	White     = Color{1, 1, 1, 1}
	DarkGreen = FromRGBA(color.RGBA{0, 117, 44, 255})
	Maroon    = FromRGBA(color.RGBA{190, 33, 55, 255})
)

// FromRGBA normalizes an 8-bit color.
func FromRGBA(c color.RGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// Lerp interpolates every channel from c to o.
// t=0 returns c and t=1 returns o bit-for-bit.
func (c Color) Lerp(o Color, t float64) Color {
	s := 1 - t
	return Color{c.R*s + o.R*t, c.G*s + o.G*t, c.B*s + o.B*t, c.A*s + o.A*t}
}

// RGBA converts to 8-bit channels, clamping out-of-range values.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}

// Hex renders the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	rgba := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// ParseHex reads #rrggbb or #rrggbbaa.
func ParseHex(s string) (Color, error) {
	var r, g, b uint8
	a := uint8(255)
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return Color{}, fmt.Errorf("shape: bad color %q: %w", s, err)
		}
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return Color{}, fmt.Errorf("shape: bad color %q: %w", s, err)
		}
	default:
		return Color{}, fmt.Errorf("shape: bad color %q: want #rrggbb or #rrggbbaa", s)
	}
	return FromRGBA(color.RGBA{r, g, b, a}), nil
}

func channel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

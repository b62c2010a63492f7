package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/shapemorph/internal/render"
	"github.com/san-kum/shapemorph/internal/shape"
)

// FrameToSVG draws every non-background pixel as a square of side scale.
func FrameToSVG(fb *render.FrameBuffer, bg shape.Color, scale float64) string {
	if fb == nil {
		return ""
	}

	width := float64(fb.Width) * scale
	height := float64(fb.Height) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, bg.Hex()))

	// Group runs by color so one frame usually becomes a single <g>.
	groups := make(map[shape.Color][]int)
	order := make([]shape.Color, 0, 2)
	for i, c := range fb.Pixels() {
		if c == bg {
			continue
		}
		if _, ok := groups[c]; !ok {
			order = append(order, c)
		}
		groups[c] = append(groups[c], i)
	}

	for _, c := range order {
		sb.WriteString(fmt.Sprintf(`<g fill="%s">`+"\n", c.Hex()))
		for _, i := range groups[c] {
			x := float64(i%fb.Width) * scale
			y := float64(i/fb.Width) * scale
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n", x, y, scale, scale))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

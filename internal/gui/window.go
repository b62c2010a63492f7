package gui

import (
	"context"
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/shapemorph/internal/engine"
	"github.com/san-kum/shapemorph/internal/render"
)

var (
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
)

// Window blits frame buffers to a raylib texture scaled up by an integer factor.
// It is both the surface and the clock of a run: EndDrawing paces to the
// target FPS, so Wait returns immediately.
type Window struct {
	width, height int
	scale         int
	tex           rl.Texture2D
	pixels        []color.RGBA
	showHUD       bool
	last          engine.FrameStats
	closed        bool
}

// Open must be called from the main OS thread.
func Open(title string, width, height, scale, fps int) *Window {
	rl.InitWindow(int32(width*scale), int32(height*scale), title)
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)

	img := rl.GenImageColor(width, height, rl.Black)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(tex, rl.FilterPoint)

	return &Window{
		width:  width,
		height: height,
		scale:  scale,
		tex:    tex,
		pixels: make([]color.RGBA, width*height),
	}
}

func (w *Window) Present(fb *render.FrameBuffer) error {
	if fb.Width != w.width || fb.Height != w.height {
		return fmt.Errorf("gui: frame %dx%d does not match window %dx%d", fb.Width, fb.Height, w.width, w.height)
	}
	w.handleKeys()

	w.pixels = fb.RGBA(w.pixels)
	rl.UpdateTexture(w.tex, w.pixels)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawTextureEx(w.tex, rl.NewVector2(0, 0), 0, float32(w.scale), rl.White)
	if w.showHUD {
		w.drawHUD()
	}
	rl.EndDrawing()
	return nil
}

func (w *Window) handleKeys() {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		w.closed = true
	}
	if rl.IsKeyPressed(rl.KeyH) {
		w.showHUD = !w.showHUD
	}
}

func (w *Window) drawHUD() {
	m := w.last.Morph
	dir := "sphere"
	if m.Forward {
		dir = "torus"
	}
	rl.DrawText(fmt.Sprintf("t %.3f -> %s", m.Factor, dir), 8, 8, 10, ColSelect)
	rl.DrawText(fmt.Sprintf("hold %.2f  drawn %d", m.Hold, w.last.Drawn), 8, 20, 10, ColText)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 8, int32(w.height*w.scale)-18, 10, ColTextDim)
}

// OnFrame feeds the HUD.
func (w *Window) OnFrame(s engine.FrameStats) { w.last = s }

func (w *Window) ShouldClose() bool { return w.closed || rl.WindowShouldClose() }

func (w *Window) Elapsed() float64 { return rl.GetTime() }

func (w *Window) Wait(ctx context.Context) error { return ctx.Err() }

func (w *Window) Close() {
	rl.UnloadTexture(w.tex)
	rl.CloseWindow()
}

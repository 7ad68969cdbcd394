package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cellwars/config"
	"github.com/pthm-cable/cellwars/game"
	"github.com/pthm-cable/cellwars/palette"
)

// outlineKeep is the share of team color brightness kept in cell outlines.
const outlineKeep = 0.6

// Window is the raylib frontend. It owns the OS window and paces frames
// to the configured target FPS.
type Window struct {
	renderer *Renderer
	hud      *HUD
	controls *Controls

	arenaWidth  int32
	arenaHeight int32
}

// NewWindow opens a window sized for the arena plus the scoreboard.
func NewWindow(cfg *config.Config, title string) *Window {
	rl.InitWindow(int32(cfg.Derived.TotalWidth), int32(cfg.Derived.TotalHeight), title)
	rl.SetTargetFPS(int32(cfg.Clock.TargetFPS))
	rl.SetExitKey(0)

	arenaW := int32(cfg.Arena.Width)
	arenaH := int32(cfg.Arena.Height)
	boardW := int32(cfg.Arena.ScoreboardWidth)

	th := DefaultTheme()
	controlsY := arenaH - th.Padding - controlsHeight(th)
	return &Window{
		renderer:    NewRenderer(),
		hud:         NewHUD(arenaW, boardW, arenaH),
		controls:    NewControls(arenaW+th.Padding, controlsY, boardW-2*th.Padding),
		arenaWidth:  arenaW,
		arenaHeight: arenaH,
	}
}

// Poll implements game.Frontend. Closing the window requests quit.
func (w *Window) Poll() game.Input {
	in := w.controls.Poll()
	if rl.WindowShouldClose() {
		in.Quit = true
	}
	return in
}

// Present implements game.Frontend.
func (w *Window) Present(f *game.Frame) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	th := w.renderer.Theme
	rl.ClearBackground(th.Background)

	for _, food := range f.Food {
		rl.DrawCircle(int32(food.X), int32(food.Y), float32(food.Radius), toRL(food.Color))
	}
	// Ascending mass, so larger cells cover smaller ones.
	for _, c := range f.Cells {
		x, y, r := int32(c.X), int32(c.Y), float32(c.Radius)
		rl.DrawCircle(x, y, r, toRL(c.Color))
		rl.DrawCircleLines(x, y, r, toRL(palette.Dim(c.Color, outlineKeep)))
	}

	switch f.State {
	case game.StatePaused:
		w.renderer.drawPaused(w.arenaWidth, w.arenaHeight)
	case game.StateVictory:
		if f.Winner != nil {
			w.renderer.drawVictory(f.Winner, w.arenaWidth, w.arenaHeight)
		}
	}

	w.hud.Draw(f)
	w.controls.Draw(f)
}

// Wait implements game.Frontend. raylib already paced the frame in EndDrawing.
func (w *Window) Wait() float64 {
	return float64(rl.GetFPS())
}

// Close implements game.Frontend.
func (w *Window) Close() error {
	rl.CloseWindow()
	return nil
}

package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a filled panel.
func (r *Renderer) DrawPanel(x, y, width, height int32, color rl.Color) {
	rl.DrawRectangle(x, y, width, height, color)
}

// DrawBar draws a proportional bar. fraction is clamped to [0, 1].
func (r *Renderer) DrawBar(x, y, width int32, fraction float64, fill rl.Color) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	rl.DrawRectangle(x, y, width, r.Theme.BarHeight, r.Theme.BarBg)
	rl.DrawRectangle(x, y, int32(float64(width)*fraction), r.Theme.BarHeight, fill)
}

// DrawTextCentered draws text horizontally centered on cx with its vertical center at cy.
func (r *Renderer) DrawTextCentered(text string, cx, cy, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, cx-w/2, cy-size/2, size, color)
}

// DrawTextRight draws text whose right edge is at x.
func (r *Renderer) DrawTextRight(text string, x, y, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, x-w, y, size, color)
}

// DrawTextField draws a single-line text box with an optional cursor.
// cursor is a rune offset into text; a negative value hides it.
func (r *Renderer) DrawTextField(bounds rl.Rectangle, text string, cursor int, focused bool) {
	x, y := int32(bounds.X), int32(bounds.Y)
	w, h := int32(bounds.Width), int32(bounds.Height)

	rl.DrawRectangle(x, y, w, h, r.Theme.FieldBg)
	border := r.Theme.Divider
	if focused {
		border = r.Theme.FieldFocus
	}
	rl.DrawRectangleLinesEx(bounds, 1, border)

	textY := y + (h-r.Theme.FontMain)/2
	rl.DrawText(text, x+6, textY, r.Theme.FontMain, r.Theme.TextLight)

	if focused && cursor >= 0 {
		runes := []rune(text)
		if cursor > len(runes) {
			cursor = len(runes)
		}
		cx := x + 6 + rl.MeasureText(string(runes[:cursor]), r.Theme.FontMain)
		rl.DrawLine(cx, textY, cx, textY+r.Theme.FontMain, r.Theme.TextLight)
	}
}

package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cellwars/game"
	"github.com/pthm-cable/cellwars/systems"
)

// fieldKeys maps editing keys to field operations while the speed field has focus.
var fieldKeys = []struct {
	key int32
	op  systems.EditOp
}{
	{rl.KeyBackspace, systems.EditBackspace},
	{rl.KeyDelete, systems.EditDelete},
	{rl.KeyLeft, systems.EditLeft},
	{rl.KeyRight, systems.EditRight},
	{rl.KeyHome, systems.EditHome},
	{rl.KeyEnd, systems.EditEnd},
}

// insertEdits turns typed characters into insert edits, dropping control runes.
func insertEdits(dst []systems.TextEdit, runes []rune) []systems.TextEdit {
	for _, r := range runes {
		if r < ' ' || r == 0x7f {
			continue
		}
		dst = append(dst, systems.TextEdit{Op: systems.EditInsert, Rune: r})
	}
	return dst
}

// Controls owns the speed field focus and the Pause/Restart buttons.
// Button clicks happen while drawing, so they are held until the next poll.
type Controls struct {
	renderer *Renderer
	x, y     int32
	width    int32
	focused  bool
	pending  game.Input
	field    rl.Rectangle
}

// NewControls places the controls block at (x, y).
func NewControls(x, y, width int32) *Controls {
	c := &Controls{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
	th := c.renderer.Theme
	c.field = rl.Rectangle{
		X:      float32(x + 60),
		Y:      float32(y),
		Width:  float32(width - 60),
		Height: float32(th.FieldHeight),
	}
	return c
}

// Focused reports whether keystrokes go to the speed field.
func (c *Controls) Focused() bool {
	return c.focused
}

// Poll reads the keyboard and mouse and merges in pending button clicks.
func (c *Controls) Poll() game.Input {
	in := c.pending
	c.pending = game.Input{}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		c.focused = rl.CheckCollisionPointRec(rl.GetMousePosition(), c.field)
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		c.focused = !c.focused
	}

	if c.focused {
		var typed []rune
		for r := rl.GetCharPressed(); r != 0; r = rl.GetCharPressed() {
			typed = append(typed, r)
		}
		in.SpeedEdits = insertEdits(in.SpeedEdits, typed)
		for _, k := range fieldKeys {
			if rl.IsKeyPressed(k.key) || rl.IsKeyPressedRepeat(k.key) {
				in.SpeedEdits = append(in.SpeedEdits, systems.TextEdit{Op: k.op})
			}
		}
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
			in.SpeedEdits = append(in.SpeedEdits, systems.TextEdit{Op: systems.EditCommit})
			c.focused = false
		}
		if rl.IsKeyPressed(rl.KeyEscape) {
			c.focused = false
		}
		return in
	}

	if rl.IsKeyPressed(rl.KeyQ) {
		in.Quit = true
	}
	if rl.IsKeyPressed(rl.KeyR) {
		in.Restart = true
	}
	if rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeySpace) {
		in.TogglePause = true
	}
	return in
}

// Draw renders the speed field and the buttons.
func (c *Controls) Draw(f *game.Frame) {
	r := c.renderer
	th := r.Theme

	labelY := c.y + (th.FieldHeight-th.FontMain)/2
	rl.DrawText("Speed:", c.x, labelY, th.FontMain, th.TextMuted)
	r.DrawTextField(c.field, f.SpeedText, f.SpeedCursor, c.focused)

	by := float32(c.y + th.FieldHeight + th.Padding)
	half := float32(c.width-th.Padding) / 2
	pauseText := "Pause"
	if f.State == game.StatePaused {
		pauseText = "Resume"
	}
	if gui.Button(rl.Rectangle{X: float32(c.x), Y: by, Width: half, Height: float32(th.ButtonHeight)}, pauseText) {
		c.pending.TogglePause = true
	}
	if gui.Button(rl.Rectangle{X: float32(c.x) + half + float32(th.Padding), Y: by, Width: half, Height: float32(th.ButtonHeight)}, "Restart") {
		c.pending.Restart = true
	}
}

// controlsHeight is the vertical space the controls occupy.
func controlsHeight(th Theme) int32 {
	return th.FieldHeight + th.Padding + th.ButtonHeight
}

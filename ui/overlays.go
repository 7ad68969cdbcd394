package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cellwars/game"
)

const (
	restartPrompt = "Press 'R' to Restart or 'Q' to Quit"
	resumePrompt  = "Press 'P' to Resume"
)

// victoryLines returns the banner, the winner line and the two detail lines
// for the end-of-match overlay.
func victoryLines(w *game.Winner) (banner, winner, mass, clock string) {
	banner, winner = w.Headline()
	return banner, winner, game.MassText("Final Mass: ", w.Mass), "Final Time: " + game.FormatClock(w.TimeMs)
}

// drawVictory dims the arena and announces the winner.
func (r *Renderer) drawVictory(w *game.Winner, width, height int32) {
	th := r.Theme
	rl.DrawRectangle(0, 0, width, height, th.Overlay)

	banner, winner, mass, clock := victoryLines(w)
	cx, cy := width/2, height/2
	r.DrawTextCentered(banner, cx, cy-120, th.FontLarge, toRL(w.Color))
	r.DrawTextCentered(winner, cx, cy-30, th.FontMedium, th.TextLight)
	r.DrawTextCentered(mass, cx, cy+20, th.FontMedium, th.TextMuted)
	r.DrawTextCentered(clock, cx, cy+60, th.FontMedium, th.TextMuted)
	r.DrawTextCentered(restartPrompt, cx, cy+120, th.FontMedium, th.TextLight)
}

// drawPaused dims the arena and shows the resume prompt.
func (r *Renderer) drawPaused(width, height int32) {
	th := r.Theme
	rl.DrawRectangle(0, 0, width, height, th.Overlay)
	cx, cy := width/2, height/2
	r.DrawTextCentered("PAUSED", cx, cy-30, th.FontLarge, th.TextLight)
	r.DrawTextCentered(resumePrompt, cx, cy+40, th.FontMedium, th.TextMuted)
}

package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cellwars/game"
)

// leaderboardRow is one laid-out leaderboard entry.
type leaderboardRow struct {
	Team     game.TeamView
	Y        int32
	Label    string
	Mass     string
	Fraction float64
}

// layoutLeaderboard places the visible teams top-down from firstY.
// Teams with neither agents nor mass are skipped without leaving a gap.
func layoutLeaderboard(f *game.Frame, firstY, entryHeight int32) []leaderboardRow {
	rows := make([]leaderboardRow, 0, len(f.Teams))
	for _, t := range f.Teams {
		if !t.Visible() {
			continue
		}
		rows = append(rows, leaderboardRow{
			Team:     t,
			Y:        firstY + int32(len(rows))*entryHeight,
			Label:    t.Label(),
			Mass:     game.MassText("Mass: ", t.Mass),
			Fraction: f.BarFraction(t),
		})
	}
	return rows
}

// HUD renders the scoreboard column to the right of the arena.
type HUD struct {
	renderer *Renderer
	x        int32 // left edge of the scoreboard
	width    int32
	height   int32
}

// NewHUD creates a scoreboard starting at x.
func NewHUD(x, width, height int32) *HUD {
	return &HUD{
		renderer: NewRenderer(),
		x:        x,
		width:    width,
		height:   height,
	}
}

// Draw renders the scoreboard panel, clock and leaderboard.
func (h *HUD) Draw(f *game.Frame) {
	r := h.renderer
	th := r.Theme

	r.DrawPanel(h.x, 0, h.width, h.height, th.ScoreboardBg)
	rl.DrawLineEx(
		rl.Vector2{X: float32(h.x), Y: 0},
		rl.Vector2{X: float32(h.x), Y: float32(h.height)},
		th.DividerWidth, th.Divider,
	)

	right := h.x + h.width - th.Padding
	r.DrawTextRight(fmt.Sprintf("FPS: %.0f", f.FPS), right, th.Padding, th.FontSmall, th.TextMuted)
	r.DrawTextRight("Time: "+f.Clock(), right, th.Padding+th.FontSmall+4, th.FontSmall, th.TextMuted)

	left := h.x + th.Padding
	rl.DrawText("Leaderboard", left, th.LeaderboardY, th.FontTitle, th.TextLight)

	barWidth := h.width - 2*th.Padding
	for _, row := range layoutLeaderboard(f, th.FirstEntryY, th.EntryHeight) {
		color := toRL(row.Team.Color)
		rl.DrawText(row.Label, left, row.Y, th.FontMain, color)
		rl.DrawText(row.Mass, left, row.Y+20, th.FontSmall, th.TextMuted)
		r.DrawBar(left, row.Y+40, barWidth, row.Fraction, color)
	}
}

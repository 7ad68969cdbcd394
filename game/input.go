package game

import (
	"log/slog"

	"github.com/pthm-cable/cellwars/systems"
)

// Input is the frontend's request set for one frame.
// Quit and Restart are acted on by Run; the rest by Update.
type Input struct {
	Quit        bool
	TogglePause bool
	Restart     bool
	SpeedEdits  []systems.TextEdit
}

// Empty reports whether the input requests nothing.
func (in Input) Empty() bool {
	return !in.Quit && !in.TogglePause && !in.Restart && len(in.SpeedEdits) == 0
}

// handleInput applies pause toggles and speed field edits.
// Both work in every state; a toggle in StateVictory is ignored.
func (g *Game) handleInput(in Input) {
	for _, e := range in.SpeedEdits {
		if !g.speed.Apply(e) {
			continue
		}
		prev := g.clock.Speed()
		g.clock.SetSpeed(g.speed.Value())
		if prev != g.speed.Value() {
			slog.Info("speed changed", "match", g.match, "tick", g.tick, "from", prev, "to", g.speed.Value())
		}
	}

	if in.TogglePause {
		switch g.state {
		case StatePlaying:
			g.state = StatePaused
		case StatePaused:
			g.state = StatePlaying
		}
	}
}

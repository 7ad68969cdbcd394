package game

import (
	"log/slog"

	"github.com/pthm-cable/cellwars/components"
	"github.com/pthm-cable/cellwars/systems"
)

// State is the match state.
type State uint8

const (
	StatePlaying State = iota
	StatePaused
	StateVictory
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateVictory:
		return "victory"
	}
	return "unknown"
}

// Winner is the match result, set once on entering StateVictory.
// Team is systems.NoTeam when every agent died in the same tick.
type Winner struct {
	Team   int              `msgpack:"team"`
	Mass   float64          `msgpack:"mass"`
	Color  components.Color `msgpack:"color"`
	TimeMs float64          `msgpack:"time_ms"`
	Tick   int32            `msgpack:"tick"`
}

// Draw reports whether the match ended with no surviving team.
func (w Winner) Draw() bool {
	return w.Team == systems.NoTeam
}

// LogValue implements slog.LogValuer for structured logging.
func (w Winner) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("team", w.Team),
		slog.Bool("draw", w.Draw()),
		slog.Float64("mass", w.Mass),
		slog.Float64("time_ms", w.TimeMs),
		slog.Int("tick", int(w.Tick)),
	)
}

package game

import (
	"fmt"
	"math"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cellwars/components"
	"github.com/pthm-cable/cellwars/telemetry"
)

// CellView is the render record of one agent.
type CellView struct {
	ID     uint32           `msgpack:"id"`
	X      float64          `msgpack:"x"`
	Y      float64          `msgpack:"y"`
	Radius float64          `msgpack:"r"`
	Mass   float64          `msgpack:"m"`
	Team   int              `msgpack:"team"`
	Color  components.Color `msgpack:"color"`
}

// FoodView is the render record of one pellet.
type FoodView struct {
	X      float64          `msgpack:"x"`
	Y      float64          `msgpack:"y"`
	Radius float64          `msgpack:"r"`
	Color  components.Color `msgpack:"color"`
}

// TeamView is one leaderboard row.
type TeamView struct {
	Team  int              `msgpack:"team"`
	Mass  float64          `msgpack:"mass"`
	Count int              `msgpack:"count"`
	Color components.Color `msgpack:"color"`
}

// Visible reports whether the team still has a place on the leaderboard.
func (t TeamView) Visible() bool {
	return t.Count > 0 || t.Mass > 0
}

// Frame is a read-only snapshot of one tick, handed to frontends and recorders.
// Slices are freshly allocated; a frame stays valid after later ticks.
type Frame struct {
	Match  int     `msgpack:"match"`
	Tick   int32   `msgpack:"tick"`
	Width  float64 `msgpack:"w"`
	Height float64 `msgpack:"h"`

	Food    []FoodView `msgpack:"food"`
	Cells   []CellView `msgpack:"cells"` // ascending mass, the draw order
	Teams   []TeamView `msgpack:"teams"` // descending mass
	MaxMass float64    `msgpack:"max_mass"`

	State     State   `msgpack:"state"`
	ElapsedMs float64 `msgpack:"elapsed_ms"`
	FPS       float64 `msgpack:"fps"`
	Winner    *Winner `msgpack:"winner,omitempty"`

	Speed       float64 `msgpack:"speed"`
	SpeedText   string  `msgpack:"speed_text"`
	SpeedCursor int     `msgpack:"-"`

	Events []telemetry.Event `msgpack:"events,omitempty"`
}

// Clock returns the elapsed match time as MM:SS.
func (f *Frame) Clock() string {
	return FormatClock(f.ElapsedMs)
}

// BarFraction returns a team's share of the leading team's mass, in [0,1].
func (f *Frame) BarFraction(t TeamView) float64 {
	maxMass := f.MaxMass
	if maxMass < 1 {
		maxMass = 1
	}
	return t.Mass / maxMass
}

// Frame builds the snapshot for the current tick. fps is supplied by the frontend.
// While paused or after victory nothing mutates, so repeated calls return the same picture.
func (g *Game) Frame(fps float64) Frame {
	f := Frame{
		Match:       g.match,
		Tick:        g.tick,
		Width:       g.cfg.Arena.Width,
		Height:      g.cfg.Arena.Height,
		MaxMass:     g.summary.MaxMass,
		State:       g.state,
		ElapsedMs:   g.clock.ElapsedMs(),
		FPS:         fps,
		Speed:       g.clock.Speed(),
		SpeedText:   g.speed.Text(),
		SpeedCursor: g.speed.Cursor(),
	}
	if g.state == StateVictory {
		w := g.winner
		f.Winner = &w
	}
	if len(g.events) > 0 {
		f.Events = append([]telemetry.Event(nil), g.events...)
	}

	f.Food = make([]FoodView, 0, g.store.FoodCount())
	g.store.ForEachFood(func(_ ecs.Entity, pos *components.Position, food *components.Food) {
		f.Food = append(f.Food, FoodView{X: pos.X, Y: pos.Y, Radius: food.Radius, Color: food.Color})
	})

	f.Cells = make([]CellView, 0, g.store.CellCount())
	g.store.ForEachCell(func(_ ecs.Entity, pos *components.Position, cell *components.Cell, team *components.Team) {
		f.Cells = append(f.Cells, CellView{
			ID:     cell.ID,
			X:      pos.X,
			Y:      pos.Y,
			Radius: cell.Radius,
			Mass:   cell.Mass,
			Team:   cell.Team,
			Color:  team.Color,
		})
	})
	sort.SliceStable(f.Cells, func(i, j int) bool {
		return f.Cells[i].Mass < f.Cells[j].Mass
	})

	for _, ts := range g.summary.Sorted() {
		f.Teams = append(f.Teams, TeamView{
			Team:  ts.Team,
			Mass:  ts.Mass,
			Count: ts.Count,
			Color: g.colors[ts.Team],
		})
	}

	return f
}

// Label renders the leaderboard heading, "Team N (k players)".
func (t TeamView) Label() string {
	return fmt.Sprintf("Team %d (%d players)", t.Team, t.Count)
}

// MassText renders a mass rounded to a whole number with thousands separators.
func MassText(prefix string, mass float64) string {
	return prefix + humanize.Comma(int64(math.Round(mass)))
}

// Headline returns the end-of-match banner and the winner line.
func (w Winner) Headline() (banner, line string) {
	if w.Draw() {
		return "DRAW!", "No Team Wins!"
	}
	return "VICTORY!", fmt.Sprintf("Team %d Wins!", w.Team)
}

package game

import (
	"log/slog"
	"time"

	humanize "github.com/dustin/go-humanize"

	"github.com/pthm-cable/cellwars/telemetry"
)

// logStandings logs the leaderboard and a per-phase timing breakdown at the end of a match.
func (g *Game) logStandings() {
	for rank, t := range g.summary.Sorted() {
		if t.Count == 0 && t.Mass == 0 {
			continue
		}
		slog.Info("standing",
			"run", g.runID,
			"match", g.match,
			"rank", rank+1,
			"team", t.Team,
			"cells", t.Count,
			"mass", humanize.Comma(int64(t.Mass)),
		)
	}

	perf := g.perfCollector.Stats()
	attrs := []any{
		"run", g.runID,
		"match", g.match,
		"tick", g.tick,
		"clock", FormatClock(g.clock.ElapsedMs()),
		"state", g.state.String(),
		"avg_tick", perf.AvgTick.Round(time.Microsecond).String(),
		"busiest", perf.Busiest().String(),
	}
	for ph, avg := range perf.PhaseAvg {
		attrs = append(attrs, telemetry.Phase(ph).String(), avg.Round(time.Microsecond).String())
	}
	slog.Info("match ended", attrs...)
}

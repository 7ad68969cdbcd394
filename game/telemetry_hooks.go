package game

import (
	"log/slog"

	"github.com/pthm-cable/cellwars/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
// The window is also flushed on the victory tick so the final standings are written.
func (g *Game) flushTelemetry() {
	if g.state != StateVictory && !g.collector.ShouldFlush(g.tick) {
		return
	}
	g.flushWindow()
}

func (g *Game) flushWindow() {
	pop := g.samplePopulation()

	stats := g.collector.Flush(g.tick, pop)
	stats.Match = g.match
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		teams := telemetry.TeamRecords(stats.WindowEndTick, pop)
		for i := range teams {
			teams[i].Match = g.match
		}
		if err := g.outputManager.WriteTeams(teams); err != nil {
			slog.Error("failed to write teams", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, g.match, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if g.outputManager != nil {
			if err := g.outputManager.WriteBookmark(bm); err != nil {
				slog.Error("failed to write bookmark", "error", err)
			}
		}
	}
}

// samplePopulation gathers the per-agent and per-team figures for a stats window.
func (g *Game) samplePopulation() telemetry.Population {
	pop := telemetry.Population{
		CellMasses: make([]float64, 0, len(g.cells)),
		TeamMasses: make([]float64, len(g.summary.Teams)),
		TeamCounts: make([]int, len(g.summary.Teams)),
		Food:       g.store.FoodCount(),
		SimTimeMs:  g.clock.ElapsedMs(),
		Speed:      g.clock.Speed(),
	}
	for _, c := range g.cells {
		pop.CellMasses = append(pop.CellMasses, c.Mass)
	}
	for i, t := range g.summary.Teams {
		pop.TeamMasses[i] = t.Mass
		pop.TeamCounts[i] = t.Count
	}
	return pop
}

// recordFrame appends the frame to the recording, if one is open.
// Frames repeated while paused or after victory are recorded once.
func (g *Game) recordFrame(f *Frame) {
	if g.recorder == nil || g.recorded && f.Tick == g.recordedTick {
		return
	}
	g.recorded, g.recordedTick = true, f.Tick
	if err := g.recorder.Record(f); err != nil {
		slog.Error("failed to record frame", "error", err)
		g.recorder = nil
	}
}

package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/cellwars/palette"
	"github.com/pthm-cable/cellwars/systems"
	"github.com/pthm-cable/cellwars/telemetry"
)

// simulationStep runs a single tick of the match.
func (g *Game) simulationStep(dt time.Duration) {
	g.perfCollector.StartTick()

	g.clock.Advance(dt)
	speed := g.clock.Speed()

	// 1. Spawn food
	g.perfCollector.StartPhase(telemetry.PhaseSpawn)
	g.spawnFood(speed)

	// 2. Move agents
	g.perfCollector.StartPhase(telemetry.PhaseMotion)
	g.motion.Update(speed, g.rng)

	// 3. Agents eat food
	g.perfCollector.StartPhase(telemetry.PhaseFood)
	g.updateFood()

	// 4. Agents eat agents
	g.perfCollector.StartPhase(telemetry.PhaseCells)
	g.updateCells()

	// 5. Team totals
	g.perfCollector.StartPhase(telemetry.PhaseAggregate)
	g.aggregate()

	// 6. Win condition
	g.perfCollector.StartPhase(telemetry.PhaseVictory)
	g.checkVictory()

	g.tick++

	// 7. Telemetry
	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	for _, e := range g.events {
		g.collector.Record(e)
	}
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

func (g *Game) updateFood() {
	eaten := g.consumption.FoodPass()
	if eaten == 0 {
		return
	}
	g.store.forgetRemoved(eaten, 0)
	g.events = append(g.events, telemetry.NewFoodEatenEvent(g.tick, eaten, float64(eaten)*g.rules.FoodMass))
}

func (g *Game) updateCells() {
	g.consumptions = g.consumption.CellPass(g.consumptions[:0])
	if len(g.consumptions) == 0 {
		return
	}
	g.store.forgetRemoved(0, len(g.consumptions))
	for _, c := range g.consumptions {
		g.events = append(g.events, telemetry.NewConsumptionEvent(g.tick, c.Eater, c.EaterTeam, c.Eaten, c.EatenTeam, c.EatenMass))
	}
}

// aggregate recomputes team totals from the live agents.
func (g *Game) aggregate() {
	g.cells = g.store.Cells(g.cells[:0])
	g.summary = systems.AggregateTeams(g.cfg.Teams.Count, g.cells)
}

// checkVictory ends the match when at most one team has live agents.
func (g *Game) checkVictory() {
	alive, last := g.summary.Survivors()
	switch alive {
	case 0:
		g.declareWinner(systems.NoTeam)
	case 1:
		g.declareWinner(last)
	}
}

func (g *Game) declareWinner(team int) {
	g.state = StateVictory
	g.winner = Winner{
		Team:   team,
		Color:  palette.NoTeam,
		TimeMs: g.clock.ElapsedMs(),
		Tick:   g.tick,
	}
	if team != systems.NoTeam {
		g.winner.Mass = g.summary.Teams[team].Mass
		g.winner.Color = g.colors[team]
	}

	g.events = append(g.events, telemetry.NewVictoryEvent(g.tick, team, g.winner.Mass))
	slog.Info("victory", "run", g.runID, "match", g.match, "winner", g.winner, "clock", FormatClock(g.winner.TimeMs))
}

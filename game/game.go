// Package game runs a team cell match: the entity store, tick phases, state
// machine, and the loop that connects the simulation to a frontend.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cellwars/components"
	"github.com/pthm-cable/cellwars/config"
	"github.com/pthm-cable/cellwars/palette"
	"github.com/pthm-cable/cellwars/systems"
	"github.com/pthm-cable/cellwars/telemetry"
)

// Options configures a match.
type Options struct {
	Config         *config.Config // nil uses config.Cfg()
	Seed           int64
	Match          int    // restart counter, 0 for the first match
	RunID          string // attached to log records
	SpeedText      string // initial multiplier text, empty uses clock.default_speed
	LogStats       bool
	StatsWindowSec float64 // 0 uses telemetry.stats_window
	MaxTicks       int     // Run stops after this many ticks in one match, 0 = unlimited

	// Shared sinks owned by the caller; they outlive restarts.
	Output   *telemetry.OutputManager
	Recorder *telemetry.FrameRecorder
	Cues     CuePlayer
}

// Game holds the complete state of one match.
type Game struct {
	cfg   *config.Config
	rng   *rand.Rand
	world *ecs.World
	store *Store

	// Systems
	motion      *systems.MotionSystem
	consumption *systems.ConsumptionSystem
	growth      systems.GrowthParams
	rules       systems.Rules

	colors []components.Color

	// State
	state   State
	winner  Winner
	clock   Clock
	speed   *systems.SpeedField
	summary systems.TeamSummary
	tick    int32
	match   int
	runID   string
	closed  bool

	// Per-tick scratch
	cells        []components.Cell
	consumptions []systems.Consumption
	events       []telemetry.Event

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	recorder         *telemetry.FrameRecorder
	recorded         bool
	recordedTick     int32
	logStats         bool
}

// New creates a match with its starting population in place.
func New(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	// The configured default goes through the same parse rule as typed text.
	speedText := systems.FormatSpeed(cfg.Clock.DefaultSpeed)
	if opts.SpeedText != "" {
		speedText = opts.SpeedText
	}
	speed, _ := systems.ParseSpeed(speedText)

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	world := ecs.NewWorld()
	growth := systems.GrowthParamsFromConfig(cfg)
	rules := systems.RulesFromConfig(cfg)
	bounds := systems.Bounds{Width: cfg.Arena.Width, Height: cfg.Arena.Height}

	g := &Game{
		cfg:         cfg,
		rng:         rand.New(rand.NewSource(opts.Seed)),
		world:       world,
		store:       NewStore(world),
		motion:      systems.NewMotionSystem(world, systems.WanderParamsFromConfig(cfg), bounds),
		consumption: systems.NewConsumptionSystem(world, rules, growth),
		growth:      growth,
		rules:       rules,
		colors:      palette.Teams(cfg.Teams.Count, palette.ParamsFromConfig(cfg)),
		state:       StatePlaying,
		clock:       NewClock(speed),
		speed:       systems.NewSpeedField(speed),
		match:       opts.Match,
		runID:       opts.RunID,

		collector:        telemetry.NewCollector(statsWindow, cfg.Derived.TickDT),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(10),
		outputManager:    opts.Output,
		recorder:         opts.Recorder,
		logStats:         opts.LogStats,
	}

	g.spawnInitialPopulation()
	g.aggregate()

	slog.Info("match started",
		"run", g.runID,
		"match", g.match,
		"seed", opts.Seed,
		"teams", cfg.Teams.Count,
		"cells", g.store.CellCount(),
		"speed", speed,
		"same_team_eating", rules.SameTeamEating,
	)

	return g
}

// Update applies input and, while playing, advances the match by one tick.
// dt is the match time one tick covers before scaling; match time accrues dt times the speed multiplier.
func (g *Game) Update(in Input, dt time.Duration) {
	g.events = g.events[:0]
	g.handleInput(in)

	if g.state != StatePlaying {
		return
	}
	g.simulationStep(dt)
}

// State returns the current match state.
func (g *Game) State() State {
	return g.state
}

// Winner returns the match result; valid only in StateVictory.
func (g *Game) Winner() (Winner, bool) {
	return g.winner, g.state == StateVictory
}

// Tick returns the number of simulated ticks.
func (g *Game) Tick() int32 {
	return g.tick
}

// Summary returns the per-team aggregate of the last tick.
func (g *Game) Summary() systems.TeamSummary {
	return g.summary
}

// Speed returns the current speed multiplier.
func (g *Game) Speed() float64 {
	return g.clock.Speed()
}

// ElapsedMs returns scaled match time in milliseconds.
func (g *Game) ElapsedMs() float64 {
	return g.clock.ElapsedMs()
}

// PerfStats returns tick timing over the perf window.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perfCollector.Stats()
}

// RecordFrame feeds frame pacing into the perf collector.
func (g *Game) RecordFrame() {
	g.perfCollector.RecordFrame()
}

// Close flushes a final telemetry window and logs the standings. Shared sinks stay open.
// Calling Close more than once is a no-op.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	if g.collector.Pending(g.tick) {
		g.flushWindow()
	}
	g.logStandings()
}

package telemetry

import (
	"log/slog"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase is one timed section of a simulation tick.
type Phase uint8

// Tick phases, in execution order.
const (
	PhaseSpawn Phase = iota
	PhaseMotion
	PhaseFood
	PhaseCells
	PhaseAggregate
	PhaseVictory
	PhaseTelemetry
	numPhases
)

var phaseNames = [numPhases]string{"spawn", "motion", "food", "cells", "aggregate", "victory", "telemetry"}

func (p Phase) String() string {
	if p < numPhases {
		return phaseNames[p]
	}
	return "unknown"
}

// PhaseTimes holds one duration per phase.
type PhaseTimes [numPhases]time.Duration

// tickSample is the timing of one tick.
type tickSample struct {
	total  time.Duration
	phases PhaseTimes
}

// PerfCollector keeps a ring of tick timings.
type PerfCollector struct {
	ring  []tickSample
	next  int
	count int

	cur        tickSample
	tickStart  time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool

	lastFrame time.Time
	frameDur  time.Duration
}

// NewPerfCollector creates a collector averaging over the last window ticks.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{ring: make([]tickSample, window)}
}

// StartTick begins timing a tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.cur = tickSample{}
	p.inPhase = false
}

// StartPhase closes the running phase, if any, and opens ph.
func (p *PerfCollector) StartPhase(ph Phase) {
	now := time.Now()
	p.closePhase(now)
	p.phase = ph
	p.phaseStart = now
	p.inPhase = true
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.inPhase {
		p.cur.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// EndTick closes the tick and stores it in the ring.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.inPhase = false
	p.cur.total = now.Sub(p.tickStart)

	p.ring[p.next] = p.cur
	p.next = (p.next + 1) % len(p.ring)
	p.count = min(p.count+1, len(p.ring))
}

// RecordFrame notes that a frame was presented.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frameDur = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats summarizes the ticks in the window.
type PerfStats struct {
	Ticks   int
	AvgTick time.Duration
	MinTick time.Duration
	MaxTick time.Duration
	P95Tick time.Duration

	PhaseAvg PhaseTimes
	PhasePct [numPhases]float64

	TicksPerSecond float64
	FrameDuration  time.Duration
	FPS            float64
}

// Stats aggregates the current window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{Ticks: p.count, FrameDuration: p.frameDur}
	if p.frameDur > 0 {
		s.FPS = float64(time.Second) / float64(p.frameDur)
	}
	if p.count == 0 {
		return s
	}

	totals := make([]float64, p.count)
	var sum time.Duration
	var phaseSum PhaseTimes
	for i, t := range p.ring[:p.count] {
		totals[i] = float64(t.total)
		sum += t.total
		for ph, d := range t.phases {
			phaseSum[ph] += d
		}
	}
	slices.Sort(totals)

	n := time.Duration(p.count)
	s.AvgTick = sum / n
	s.MinTick = time.Duration(totals[0])
	s.MaxTick = time.Duration(totals[len(totals)-1])
	s.P95Tick = time.Duration(stat.Quantile(0.95, stat.Empirical, totals, nil))
	for ph := range phaseSum {
		s.PhaseAvg[ph] = phaseSum[ph] / n
		if s.AvgTick > 0 {
			s.PhasePct[ph] = float64(s.PhaseAvg[ph]) / float64(s.AvgTick) * 100
		}
	}
	if s.AvgTick > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTick)
	}
	return s
}

// Busiest returns the phase with the largest average share.
func (s PerfStats) Busiest() Phase {
	best := PhaseSpawn
	for ph := PhaseSpawn; ph < numPhases; ph++ {
		if s.PhaseAvg[ph] > s.PhaseAvg[best] {
			best = ph
		}
	}
	return best
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTick.Microseconds()),
		slog.Int64("p95_tick_us", s.P95Tick.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTick.Microseconds()),
		slog.Int("ticks_per_sec", int(s.TicksPerSecond)),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}
	for ph := PhaseSpawn; ph < numPhases; ph++ {
		if s.PhasePct[ph] > 0.1 {
			attrs = append(attrs, slog.Float64(ph.String()+"_pct", float64(int(s.PhasePct[ph]*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// LogStats logs the window's tick timing.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	Match        int     `csv:"match"`
	WindowEnd    int32   `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	P95TickUS    int64   `csv:"p95_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	SpawnPct     float64 `csv:"spawn_pct"`
	MotionPct    float64 `csv:"motion_pct"`
	FoodPct      float64 `csv:"food_pct"`
	CellsPct     float64 `csv:"cells_pct"`
	AggregatePct float64 `csv:"aggregate_pct"`
	VictoryPct   float64 `csv:"victory_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats into a perf.csv row.
func (s PerfStats) ToCSV(match int, windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		Match:        match,
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTick.Microseconds(),
		P95TickUS:    s.P95Tick.Microseconds(),
		MaxTickUS:    s.MaxTick.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		SpawnPct:     s.PhasePct[PhaseSpawn],
		MotionPct:    s.PhasePct[PhaseMotion],
		FoodPct:      s.PhasePct[PhaseFood],
		CellsPct:     s.PhasePct[PhaseCells],
		AggregatePct: s.PhasePct[PhaseAggregate],
		VictoryPct:   s.PhasePct[PhaseVictory],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}

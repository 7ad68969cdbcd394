package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	pelletsEaten         int
	foodMass             float64
	consumptions         int
	sameTeamConsumptions int
	massTransferred      float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// Record adds one event to the current window.
func (c *Collector) Record(e Event) {
	switch e.Type {
	case EventFoodEaten:
		c.pelletsEaten += e.Count
		c.foodMass += e.Amount
	case EventConsumption:
		c.consumptions++
		c.massTransferred += e.Amount
		if e.SameTeam() {
			c.sameTeamConsumptions++
		}
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Pending reports whether ticks have passed since the last flush.
func (c *Collector) Pending(currentTick int32) bool {
	return currentTick > c.windowStartTick
}

// Population describes the arena at the moment a window is flushed.
type Population struct {
	CellMasses []float64 // one entry per live agent
	TeamMasses []float64 // indexed by team id
	TeamCounts []int     // indexed by team id
	Food       int
	SimTimeMs  float64 // scaled match time
	Speed      float64
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, pop Population) WindowStats {
	mean, std, p10, p50, p90, maxMass := ComputeMassStats(pop.CellMasses)

	teamsAlive := 0
	leader, leaderMass := -1, 0.0
	var total float64
	for i, m := range pop.TeamMasses {
		total += m
		if i < len(pop.TeamCounts) && pop.TeamCounts[i] > 0 {
			teamsAlive++
		}
		if m > leaderMass {
			leader, leaderMass = i, m
		}
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,
		MatchTimeSec:    pop.SimTimeMs / 1000,
		Speed:           pop.Speed,

		Cells:      len(pop.CellMasses),
		TeamsAlive: teamsAlive,
		Food:       pop.Food,

		PelletsEaten:         c.pelletsEaten,
		FoodMass:             c.foodMass,
		Consumptions:         c.consumptions,
		SameTeamConsumptions: c.sameTeamConsumptions,
		MassTransferred:      c.massTransferred,

		TotalMass:  total,
		LeaderTeam: leader,
		LeaderMass: leaderMass,

		MassMean: mean,
		MassStd:  std,
		MassP10:  p10,
		MassP50:  p50,
		MassP90:  p90,
		MassMax:  maxMass,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.pelletsEaten = 0
	c.foodMass = 0
	c.consumptions = 0
	c.sameTeamConsumptions = 0
	c.massTransferred = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}

package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	Match           int     `csv:"match"`
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`
	MatchTimeSec    float64 `csv:"match_time"` // clock time scaled by the speed multiplier
	Speed           float64 `csv:"speed"`

	// Population at window end
	Cells      int `csv:"cells"`
	TeamsAlive int `csv:"teams_alive"`
	Food       int `csv:"food"`

	// Events during window
	PelletsEaten         int     `csv:"pellets_eaten"`
	FoodMass             float64 `csv:"food_mass"`
	Consumptions         int     `csv:"consumptions"`
	SameTeamConsumptions int     `csv:"same_team_consumptions"`
	MassTransferred      float64 `csv:"mass_transferred"`

	// Standings
	TotalMass  float64 `csv:"total_mass"`
	LeaderTeam int     `csv:"leader_team"`
	LeaderMass float64 `csv:"leader_mass"`

	// Per-agent mass distribution (sampled at window end)
	MassMean float64 `csv:"mass_mean"`
	MassStd  float64 `csv:"mass_std"`
	MassP10  float64 `csv:"mass_p10"`
	MassP50  float64 `csv:"mass_p50"`
	MassP90  float64 `csv:"mass_p90"`
	MassMax  float64 `csv:"mass_max"`
}

// ComputeMassStats calculates mean, std, percentiles and max of agent masses.
// Percentiles use the empirical distribution, so they are always observed values.
func ComputeMassStats(values []float64) (mean, std, p10, p50, p90, maxMass float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0, 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	if n > 1 {
		std = stat.StdDev(sorted, nil)
	}
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p10, p50, p90, sorted[n-1]
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("match", s.Match),
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Float64("match_time", s.MatchTimeSec),
		slog.Float64("speed", s.Speed),
		slog.Int("cells", s.Cells),
		slog.Int("teams_alive", s.TeamsAlive),
		slog.Int("food", s.Food),
		slog.Int("pellets_eaten", s.PelletsEaten),
		slog.Int("consumptions", s.Consumptions),
		slog.Int("same_team_consumptions", s.SameTeamConsumptions),
		slog.Float64("mass_transferred", s.MassTransferred),
		slog.Float64("total_mass", s.TotalMass),
		slog.Int("leader_team", s.LeaderTeam),
		slog.Float64("leader_mass", s.LeaderMass),
		slog.Float64("mass_mean", s.MassMean),
		slog.Float64("mass_std", s.MassStd),
		slog.Float64("mass_p50", s.MassP50),
		slog.Float64("mass_max", s.MassMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"match", s.Match,
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"match_time", s.MatchTimeSec,
		"speed", s.Speed,
		"cells", s.Cells,
		"teams_alive", s.TeamsAlive,
		"food", s.Food,
		"pellets_eaten", s.PelletsEaten,
		"food_mass", s.FoodMass,
		"consumptions", s.Consumptions,
		"same_team_consumptions", s.SameTeamConsumptions,
		"mass_transferred", s.MassTransferred,
		"total_mass", s.TotalMass,
		"leader_team", s.LeaderTeam,
		"leader_mass", s.LeaderMass,
		"mass_mean", s.MassMean,
		"mass_std", s.MassStd,
		"mass_p10", s.MassP10,
		"mass_p50", s.MassP50,
		"mass_p90", s.MassP90,
		"mass_max", s.MassMax,
	)
}

// TeamRecord is one row of teams.csv: a team's standing at a window boundary.
type TeamRecord struct {
	Match     int     `csv:"match"`
	WindowEnd int32   `csv:"window_end"`
	Team      int     `csv:"team"`
	Count     int     `csv:"count"`
	Mass      float64 `csv:"mass"`
	Share     float64 `csv:"share"` // fraction of total mass
}

// TeamRecords builds one record per team from the flushed population.
func TeamRecords(windowEnd int32, pop Population) []TeamRecord {
	var total float64
	for _, m := range pop.TeamMasses {
		total += m
	}

	records := make([]TeamRecord, len(pop.TeamMasses))
	for i, m := range pop.TeamMasses {
		r := TeamRecord{WindowEnd: windowEnd, Team: i, Mass: m}
		if i < len(pop.TeamCounts) {
			r.Count = pop.TeamCounts[i]
		}
		if total > 0 {
			r.Share = m / total
		}
		records[i] = r
	}
	return records
}

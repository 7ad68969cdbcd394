package systems

import (
	"sort"

	"github.com/pthm-cable/cellwars/components"
)

// NoTeam marks the absence of a team, e.g. the winner of a mutual wipe-out.
const NoTeam = -1

// TeamStats is the aggregate of one team's live agents.
type TeamStats struct {
	Team  int
	Mass  float64
	Count int
}

// TeamSummary holds per-team aggregates indexed by team id.
type TeamSummary struct {
	Teams   []TeamStats
	MaxMass float64 // largest team mass, never below 1
}

// AggregateTeams sums mass and population per team from live agents.
// Teams with no agents are still present with zero values.
func AggregateTeams(numTeams int, cells []components.Cell) TeamSummary {
	summary := TeamSummary{Teams: make([]TeamStats, numTeams), MaxMass: 1}
	for i := range summary.Teams {
		summary.Teams[i].Team = i
	}

	for i := range cells {
		c := &cells[i]
		if !c.Alive || c.Team < 0 || c.Team >= numTeams {
			continue
		}
		summary.Teams[c.Team].Mass += c.Mass
		summary.Teams[c.Team].Count++
	}

	for _, t := range summary.Teams {
		if t.Mass > summary.MaxMass {
			summary.MaxMass = t.Mass
		}
	}
	return summary
}

// Sorted returns the teams ordered by mass descending, ties by team id.
func (s TeamSummary) Sorted() []TeamStats {
	sorted := make([]TeamStats, len(s.Teams))
	copy(sorted, s.Teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Mass > sorted[j].Mass
	})
	return sorted
}

// Survivors returns how many teams have live agents and the id of the last one found.
func (s TeamSummary) Survivors() (count, lastTeam int) {
	lastTeam = NoTeam
	for _, t := range s.Teams {
		if t.Count > 0 {
			count++
			lastTeam = t.Team
		}
	}
	return count, lastTeam
}

// TotalMass returns the summed mass of all teams.
func (s TeamSummary) TotalMass() float64 {
	var total float64
	for _, t := range s.Teams {
		total += t.Mass
	}
	return total
}

// Population returns the number of live agents across all teams.
func (s TeamSummary) Population() int {
	n := 0
	for _, t := range s.Teams {
		n += t.Count
	}
	return n
}

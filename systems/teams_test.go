package systems

import (
	"reflect"
	"testing"

	"github.com/pthm-cable/cellwars/components"
)

func TestAggregateTeams(t *testing.T) {
	cells := []components.Cell{
		{Team: 0, Mass: 20, Alive: true},
		{Team: 0, Mass: 35.5, Alive: true},
		{Team: 2, Mass: 100, Alive: true},
		{Team: 1, Mass: 999, Alive: false}, // eaten this tick
	}

	s := AggregateTeams(3, cells)

	want := []TeamStats{
		{Team: 0, Mass: 55.5, Count: 2},
		{Team: 1, Mass: 0, Count: 0},
		{Team: 2, Mass: 100, Count: 1},
	}
	if !reflect.DeepEqual(s.Teams, want) {
		t.Errorf("teams = %+v, want %+v", s.Teams, want)
	}
	if s.MaxMass != 100 {
		t.Errorf("max mass = %v, want 100", s.MaxMass)
	}
	if s.Population() != 3 {
		t.Errorf("population = %d, want 3", s.Population())
	}
	if s.TotalMass() != 155.5 {
		t.Errorf("total mass = %v, want 155.5", s.TotalMass())
	}
}

func TestAggregateTeamsIdempotent(t *testing.T) {
	cells := []components.Cell{
		{Team: 1, Mass: 3, Alive: true},
		{Team: 0, Mass: 7, Alive: true},
		{Team: 1, Mass: 11, Alive: true},
	}

	first := AggregateTeams(2, cells)
	second := AggregateTeams(2, cells)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation differs: %+v vs %+v", first, second)
	}
}

func TestAggregateTeamsEmptyMaxMassFloor(t *testing.T) {
	s := AggregateTeams(4, nil)

	if s.MaxMass != 1 {
		t.Errorf("max mass = %v, want floor of 1", s.MaxMass)
	}
	if n, last := s.Survivors(); n != 0 || last != NoTeam {
		t.Errorf("survivors = (%d, %d), want (0, %d)", n, last, NoTeam)
	}
}

func TestTeamSummarySorted(t *testing.T) {
	s := AggregateTeams(4, []components.Cell{
		{Team: 3, Mass: 50, Alive: true},
		{Team: 1, Mass: 80, Alive: true},
		{Team: 2, Mass: 50, Alive: true},
	})

	var order []int
	for _, ts := range s.Sorted() {
		order = append(order, ts.Team)
	}

	want := []int{1, 2, 3, 0}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	// Sorting must not reorder the id-indexed slice
	if s.Teams[0].Team != 0 || s.Teams[3].Team != 3 {
		t.Error("Sorted mutated the summary")
	}
}

func TestSurvivors(t *testing.T) {
	s := AggregateTeams(3, []components.Cell{
		{Team: 2, Mass: 5, Alive: true},
		{Team: 2, Mass: 5, Alive: true},
	})

	n, last := s.Survivors()
	if n != 1 || last != 2 {
		t.Errorf("survivors = (%d, %d), want (1, 2)", n, last)
	}
}

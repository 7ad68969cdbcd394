package game

import (
	"testing"

	"github.com/pthm-cable/cellwars/systems"
)

func TestMassText(t *testing.T) {
	tests := []struct {
		mass float64
		want string
	}{
		{0, "Mass: 0"},
		{20, "Mass: 20"},
		{10239.6, "Mass: 10,240"},
		{1234567, "Mass: 1,234,567"},
	}
	for _, tt := range tests {
		if got := MassText("Mass: ", tt.mass); got != tt.want {
			t.Errorf("MassText(%g) = %q, want %q", tt.mass, got, tt.want)
		}
	}
}

func TestTeamViewLabel(t *testing.T) {
	if got := (TeamView{Team: 0, Count: 5}).Label(); got != "Team 0 (5 players)" {
		t.Errorf("Label() = %q", got)
	}
}

func TestWinnerHeadline(t *testing.T) {
	banner, line := Winner{Team: 3}.Headline()
	if banner != "VICTORY!" || line != "Team 3 Wins!" {
		t.Errorf("got %q / %q", banner, line)
	}
	banner, line = Winner{Team: systems.NoTeam}.Headline()
	if banner != "DRAW!" || line != "No Team Wins!" {
		t.Errorf("draw got %q / %q", banner, line)
	}
}

func TestBarFraction(t *testing.T) {
	f := Frame{MaxMass: 200}
	if got := f.BarFraction(TeamView{Mass: 50}); got != 0.25 {
		t.Errorf("BarFraction = %g, want 0.25", got)
	}
	// An empty board must not divide by zero.
	empty := Frame{}
	if got := empty.BarFraction(TeamView{}); got != 0 {
		t.Errorf("empty BarFraction = %g, want 0", got)
	}
}

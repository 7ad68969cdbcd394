package ui

import (
	"testing"

	"github.com/pthm-cable/cellwars/game"
	"github.com/pthm-cable/cellwars/systems"
)

func TestLayoutLeaderboardSkipsEmptyTeams(t *testing.T) {
	f := &game.Frame{
		MaxMass: 200,
		Teams: []game.TeamView{
			{Team: 3, Mass: 200, Count: 4},
			{Team: 0, Mass: 0, Count: 0},
			{Team: 1, Mass: 50, Count: 1},
		},
	}

	rows := layoutLeaderboard(f, 80, 55)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Label != "Team 3 (4 players)" || rows[0].Y != 80 {
		t.Errorf("row 0 = %q at y=%d", rows[0].Label, rows[0].Y)
	}
	if rows[1].Label != "Team 1 (1 players)" || rows[1].Y != 135 {
		t.Errorf("row 1 = %q at y=%d", rows[1].Label, rows[1].Y)
	}
	if rows[0].Fraction != 1 || rows[1].Fraction != 0.25 {
		t.Errorf("fractions = %g, %g, want 1, 0.25", rows[0].Fraction, rows[1].Fraction)
	}
}

func TestVictoryLines(t *testing.T) {
	banner, winner, mass, clock := victoryLines(&game.Winner{Team: 2, Mass: 4321, TimeMs: 83_000})
	if banner != "VICTORY!" || winner != "Team 2 Wins!" {
		t.Errorf("got %q / %q", banner, winner)
	}
	if mass != "Final Mass: 4,321" || clock != "Final Time: 01:23" {
		t.Errorf("got %q / %q", mass, clock)
	}

	banner, winner, _, _ = victoryLines(&game.Winner{Team: systems.NoTeam})
	if banner != "DRAW!" || winner != "No Team Wins!" {
		t.Errorf("draw got %q / %q", banner, winner)
	}
}

func TestInsertEditsDropsControlRunes(t *testing.T) {
	edits := insertEdits(nil, []rune{'2', '\b', '.', 0x7f, '5'})
	if len(edits) != 3 {
		t.Fatalf("got %d edits, want 3", len(edits))
	}
	field := systems.NewSpeedField(1)
	field.Apply(systems.TextEdit{Op: systems.EditBackspace})
	for _, e := range edits {
		field.Apply(e)
	}
	if got := field.Commit(); got != 2.5 {
		t.Errorf("committed %g, want 2.5", got)
	}
}

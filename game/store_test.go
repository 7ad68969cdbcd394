package game

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cellwars/components"
	"github.com/pthm-cable/cellwars/config"
	"github.com/pthm-cable/cellwars/systems"
)

func TestStoreSpawnAndRemove(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	growth := systems.GrowthParamsFromConfig(cfg)
	s := NewStore(ecs.NewWorld())

	a := s.SpawnCell(10, 10, 0, components.Color{R: 255}, 20, growth)
	s.SpawnCell(20, 20, 1, components.Color{G: 255}, 20, growth)
	pellet := s.SpawnFood(5, 5, 3, components.Color{R: 200, G: 200, B: 200})

	if s.CellCount() != 2 || s.FoodCount() != 1 {
		t.Fatalf("counts = %d cells, %d food; want 2, 1", s.CellCount(), s.FoodCount())
	}

	cells := s.Cells(nil)
	for _, c := range cells {
		r, speed := systems.Grow(c.Mass, growth)
		if c.Radius != r || c.Speed != speed {
			t.Errorf("cell %d derived (%v, %v), want (%v, %v)", c.ID, c.Radius, c.Speed, r, speed)
		}
	}
	if cells[0].ID == cells[1].ID {
		t.Error("cells share an id")
	}

	s.Remove(a)
	s.Remove(a) // already gone
	s.Remove(pellet)

	if s.CellCount() != 1 || s.FoodCount() != 0 {
		t.Errorf("counts after removal = %d cells, %d food; want 1, 0", s.CellCount(), s.FoodCount())
	}
	if got := len(s.Cells(nil)); got != 1 {
		t.Errorf("Cells returned %d agents, want 1", got)
	}
}

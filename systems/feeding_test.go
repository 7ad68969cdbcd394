package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cellwars/components"
)

var testRules = Rules{FoodMass: 2, EatThreshold: 1.1, SameTeamEating: true}

// newCell builds a live cell ref with consistent derived values.
func newCell(t *testing.T, id uint32, team int, mass, x, y float64) CellRef {
	t.Helper()
	c := &components.Cell{ID: id, Team: team, Alive: true}
	SetMass(c, mass, defaultGrowth(t))
	return CellRef{Pos: &components.Position{X: x, Y: y}, Cell: c}
}

func newFood(x, y float64) FoodRef {
	return FoodRef{
		Pos:  &components.Position{X: x, Y: y},
		Food: &components.Food{Radius: 3, Alive: true},
	}
}

func TestContainmentScenario(t *testing.T) {
	g := defaultGrowth(t)
	a := newCell(t, 1, 0, 100, 100, 100)
	b := newCell(t, 2, 1, 10, 110, 100)

	if a.Cell.Radius != 40 {
		t.Fatalf("A radius = %v, want 40", a.Cell.Radius)
	}

	got := EatCells([]CellRef{a, b}, testRules, g, nil)

	if len(got) != 1 {
		t.Fatalf("consumptions = %d, want 1", len(got))
	}
	if a.Cell.Mass != 110 {
		t.Errorf("A mass = %v, want 110", a.Cell.Mass)
	}
	if b.Cell.Alive {
		t.Error("B should be dead")
	}
	if got[0].Eater != 1 || got[0].Eaten != 2 || got[0].EatenMass != 10 || got[0].EaterMass != 110 {
		t.Errorf("unexpected record %+v", got[0])
	}
	r, s := Grow(110, g)
	if a.Cell.Radius != r || a.Cell.Speed != s {
		t.Errorf("A derived values stale: radius %v speed %v", a.Cell.Radius, a.Cell.Speed)
	}
}

func TestEatCellsSymmetric(t *testing.T) {
	g := defaultGrowth(t)
	// Smaller cell first in scan order; the larger one still eats it.
	small := newCell(t, 1, 0, 10, 110, 100)
	big := newCell(t, 2, 1, 100, 100, 100)

	EatCells([]CellRef{small, big}, testRules, g, nil)

	if small.Cell.Alive || big.Cell.Mass != 110 {
		t.Errorf("expected big to absorb small, got small alive=%v big mass=%v", small.Cell.Alive, big.Cell.Mass)
	}
}

func TestEatCellsMassConservation(t *testing.T) {
	g := defaultGrowth(t)
	a := newCell(t, 1, 0, 250, 300, 300)
	b := newCell(t, 2, 1, 37, 305, 298)
	before := a.Cell.Mass + b.Cell.Mass

	EatCells([]CellRef{a, b}, testRules, g, nil)

	if a.Cell.Mass != before {
		t.Errorf("mass after = %v, want %v", a.Cell.Mass, before)
	}
}

func TestEatCellsRules(t *testing.T) {
	tests := []struct {
		name      string
		rules     Rules
		aMass     float64
		bMass     float64
		aTeam     int
		bTeam     int
		bX        float64
		wantEaten bool
	}{
		{"below threshold", testRules, 105, 100, 0, 1, 100, false},
		{"just above threshold", testRules, 111, 100, 0, 1, 100, true},
		{"overlapping but not contained", testRules, 100, 10, 0, 1, 130, false},
		{"teammates allowed by default", testRules, 100, 10, 0, 0, 105, true},
		{"teammates protected", Rules{FoodMass: 2, EatThreshold: 1.1, SameTeamEating: false}, 100, 10, 0, 0, 105, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := defaultGrowth(t)
			a := newCell(t, 1, tt.aTeam, tt.aMass, 100, 100)
			b := newCell(t, 2, tt.bTeam, tt.bMass, tt.bX, 100)

			got := EatCells([]CellRef{a, b}, tt.rules, g, nil)

			if eaten := len(got) == 1; eaten != tt.wantEaten {
				t.Errorf("eaten = %v, want %v", eaten, tt.wantEaten)
			}
			if b.Cell.Alive == tt.wantEaten {
				t.Errorf("b alive = %v, want %v", b.Cell.Alive, !tt.wantEaten)
			}
		})
	}
}

func TestEatCellsSkipsDestroyedInSameTick(t *testing.T) {
	g := defaultGrowth(t)
	// A eats B first. C could also have eaten B but B is already gone.
	a := newCell(t, 1, 0, 400, 100, 100)
	b := newCell(t, 2, 1, 10, 102, 100)
	c := newCell(t, 3, 2, 300, 104, 100)

	got := EatCells([]CellRef{a, b, c}, testRules, g, nil)

	if b.Cell.Alive {
		t.Fatal("B should be eaten")
	}
	if a.Cell.Mass < 410 {
		t.Errorf("A should have absorbed B, mass %v", a.Cell.Mass)
	}
	for _, rec := range got {
		if rec.Eaten == 2 && rec.Eater != 1 {
			t.Errorf("B was eaten twice, second time by %d", rec.Eater)
		}
		if rec.Eater == 2 {
			t.Error("dead B acted as an eater")
		}
	}
	// A (410) vs C (300): 410 > 330 and C sits well inside A's radius 80.
	if c.Cell.Alive {
		t.Error("C should be eaten by the grown A")
	}
	if a.Cell.Mass != 710 {
		t.Errorf("A mass = %v, want 710", a.Cell.Mass)
	}
}

func TestEatFood(t *testing.T) {
	g := defaultGrowth(t)
	c := newCell(t, 1, 0, 20, 50, 50) // radius 17
	near := newFood(60, 50)
	far := newFood(90, 50)

	n := EatFood([]CellRef{c}, []FoodRef{near, far}, testRules, g)

	if n != 1 {
		t.Fatalf("eaten = %d, want 1", n)
	}
	if near.Food.Alive || !far.Food.Alive {
		t.Errorf("near alive=%v far alive=%v", near.Food.Alive, far.Food.Alive)
	}
	if c.Cell.Mass != 22 {
		t.Errorf("mass = %v, want 22", c.Cell.Mass)
	}
	if c.Cell.Radius != 18 {
		t.Errorf("radius = %v, want 18", c.Cell.Radius)
	}
}

func TestEatFoodTieGoesToFirstScanned(t *testing.T) {
	g := defaultGrowth(t)
	first := newCell(t, 1, 0, 20, 50, 50)
	second := newCell(t, 2, 1, 20, 52, 50)
	pellet := newFood(51, 50)

	EatFood([]CellRef{first, second}, []FoodRef{pellet}, testRules, g)

	if first.Cell.Mass != 22 || second.Cell.Mass != 20 {
		t.Errorf("first=%v second=%v, want 22 and 20", first.Cell.Mass, second.Cell.Mass)
	}
}

func TestEatFoodUsesGrownRadius(t *testing.T) {
	g := defaultGrowth(t)
	// Radius 17 misses a pellet at distance 20.5 (17+3=20), but after eating
	// the first pellet the radius becomes 18 and 18+3=21 reaches it.
	c := newCell(t, 1, 0, 20, 0, 0)
	first := newFood(5, 0)
	second := newFood(20.5, 0)

	n := EatFood([]CellRef{c}, []FoodRef{first, second}, testRules, g)

	if n != 2 {
		t.Errorf("eaten = %d, want 2", n)
	}
}

func TestConsumptionSystemRemovesEntities(t *testing.T) {
	g := defaultGrowth(t)
	world := ecs.NewWorld()
	cellMap := ecs.NewMap2[components.Position, components.Cell](world)
	foodMap := ecs.NewMap2[components.Position, components.Food](world)

	bigCell := components.Cell{ID: 1, Team: 0, Alive: true}
	SetMass(&bigCell, 100, g)
	smallCell := components.Cell{ID: 2, Team: 1, Alive: true}
	SetMass(&smallCell, 10, g)

	big := cellMap.NewEntity(&components.Position{X: 100, Y: 100}, &bigCell)
	small := cellMap.NewEntity(&components.Position{X: 110, Y: 100}, &smallCell)
	pellet := foodMap.NewEntity(&components.Position{X: 95, Y: 100}, &components.Food{Radius: 3, Alive: true})
	distant := foodMap.NewEntity(&components.Position{X: 500, Y: 500}, &components.Food{Radius: 3, Alive: true})

	sys := NewConsumptionSystem(world, testRules, g)
	res := sys.Update()

	if res.FoodEaten != 1 {
		t.Errorf("food eaten = %d, want 1", res.FoodEaten)
	}
	if len(res.Consumptions) != 1 {
		t.Fatalf("consumptions = %d, want 1", len(res.Consumptions))
	}
	if world.Alive(pellet) || world.Alive(small) {
		t.Error("eaten entities should be removed from the world")
	}
	if !world.Alive(big) || !world.Alive(distant) {
		t.Error("surviving entities were removed")
	}

	got := ecs.NewMap[components.Cell](world).Get(big)
	if got.Mass != 112 {
		t.Errorf("big mass = %v, want 100 + 2 food + 10 cell = 112", got.Mass)
	}
}

package game

import (
	"math"

	"github.com/pthm-cable/cellwars/components"
)

// spawnInitialPopulation places every team's agents at random integer positions.
func (g *Game) spawnInitialPopulation() {
	cfg := g.cfg
	for team := 0; team < cfg.Teams.Count; team++ {
		for i := 0; i < cfg.Teams.PlayersPerTeam; i++ {
			x, y := g.randomArenaPoint()
			g.store.SpawnCell(x, y, team, g.colors[team], cfg.Cell.StartMass, g.growth)
		}
	}
}

// spawnFood adds at most one pellet per tick while below the cap.
// The spawn chance scales with the speed multiplier, saturating at one per tick.
func (g *Game) spawnFood(speed float64) {
	cfg := g.cfg
	if g.store.FoodCount() >= cfg.Food.Max {
		return
	}
	chance := math.Min(1, cfg.Food.SpawnRate*speed)
	if g.rng.Float64() >= chance {
		return
	}

	x, y := g.randomArenaPoint()
	g.store.SpawnFood(x, y, cfg.Food.Radius, g.randomFoodColor())
}

// randomArenaPoint returns integer coordinates in [0,width] x [0,height].
func (g *Game) randomArenaPoint() (float64, float64) {
	x := g.rng.Intn(int(g.cfg.Arena.Width) + 1)
	y := g.rng.Intn(int(g.cfg.Arena.Height) + 1)
	return float64(x), float64(y)
}

// randomFoodColor draws each channel uniformly from the configured pale range.
func (g *Game) randomFoodColor() components.Color {
	lo, hi := int(g.cfg.Food.ColorMin), int(g.cfg.Food.ColorMax)
	channel := func() uint8 {
		return uint8(lo + g.rng.Intn(hi-lo+1))
	}
	return components.Color{R: channel(), G: channel(), B: channel()}
}

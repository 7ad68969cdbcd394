package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cellwars/components"
)

func TestWanderStaysInBounds(t *testing.T) {
	p := defaultGrowth(t)
	rng := rand.New(rand.NewSource(7))
	bounds := Bounds{Width: 200, Height: 100}
	wander := WanderParams{MinTicks: 30, MaxTicks: 90}

	for _, speedMul := range []float64{0.5, 1, 4, 25} {
		pos := components.Position{X: 100, Y: 50}
		h := components.Heading{}
		c := components.Cell{Alive: true}
		SetMass(&c, 20, p)

		for tick := 0; tick < 20000; tick++ {
			Wander(&pos, &h, &c, speedMul, wander, bounds, rng)
			if pos.X < 0 || pos.X > bounds.Width || pos.Y < 0 || pos.Y > bounds.Height {
				t.Fatalf("speed %v tick %d: position (%v,%v) escaped arena", speedMul, tick, pos.X, pos.Y)
			}
		}
	}
}

func TestWanderPinsAtWallWithoutReflecting(t *testing.T) {
	bounds := Bounds{Width: 100, Height: 100}
	wander := WanderParams{MinTicks: 30, MaxTicks: 90}
	rng := rand.New(rand.NewSource(1))

	pos := components.Position{X: 99, Y: 50}
	h := components.Heading{DX: 1, DY: 0}
	c := components.Cell{Alive: true, Speed: 5, WanderTimer: 50}

	for i := 0; i < 10; i++ {
		Wander(&pos, &h, &c, 1, wander, bounds, rng)
	}

	if pos.X != bounds.Width {
		t.Errorf("x = %v, want pinned at %v", pos.X, bounds.Width)
	}
	if pos.Y != 50 {
		t.Errorf("y = %v, want unchanged 50", pos.Y)
	}
	if h.DX != 1 || h.DY != 0 {
		t.Errorf("heading changed at wall: %+v", h)
	}
}

func TestWanderTimerRedraw(t *testing.T) {
	wander := WanderParams{MinTicks: 30, MaxTicks: 90}
	bounds := Bounds{Width: 100, Height: 100}
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 500; i++ {
		pos := components.Position{X: 50, Y: 50}
		h := components.Heading{}
		c := components.Cell{Alive: true, Speed: 1}

		Wander(&pos, &h, &c, 1, wander, bounds, rng)

		if c.WanderTimer < 30 || c.WanderTimer > 90 || c.WanderTimer != math.Trunc(c.WanderTimer) {
			t.Fatalf("timer %v outside integer range [30,90]", c.WanderTimer)
		}
		if n := math.Hypot(h.DX, h.DY); math.Abs(n-1) > 1e-9 {
			t.Fatalf("heading not unit length: %v", n)
		}
	}
}

func TestWanderZeroSpeedFreezes(t *testing.T) {
	wander := WanderParams{MinTicks: 30, MaxTicks: 90}
	bounds := Bounds{Width: 100, Height: 100}
	rng := rand.New(rand.NewSource(3))

	pos := components.Position{X: 50, Y: 50}
	h := components.Heading{DX: 0, DY: 1}
	c := components.Cell{Alive: true, Speed: 10, WanderTimer: 40}

	for i := 0; i < 100; i++ {
		Wander(&pos, &h, &c, 0, wander, bounds, rng)
	}
	if pos.X != 50 || pos.Y != 50 || c.WanderTimer != 40 {
		t.Errorf("zero multiplier should freeze motion, got pos %+v timer %v", pos, c.WanderTimer)
	}
}

func TestMotionSystemSkipsDeadCells(t *testing.T) {
	world := ecs.NewWorld()
	mapper := ecs.NewMap3[components.Position, components.Heading, components.Cell](world)

	live := mapper.NewEntity(
		&components.Position{X: 10, Y: 10},
		&components.Heading{DX: 1},
		&components.Cell{Alive: true, Speed: 2, WanderTimer: 50},
	)
	dead := mapper.NewEntity(
		&components.Position{X: 10, Y: 10},
		&components.Heading{DX: 1},
		&components.Cell{Alive: false, Speed: 2, WanderTimer: 50},
	)

	sys := NewMotionSystem(world, WanderParams{MinTicks: 30, MaxTicks: 90}, Bounds{Width: 100, Height: 100})
	sys.Update(1, rand.New(rand.NewSource(1)))

	posMap := ecs.NewMap[components.Position](world)
	if got := posMap.Get(live).X; got != 12 {
		t.Errorf("live cell x = %v, want 12", got)
	}
	if got := posMap.Get(dead).X; got != 10 {
		t.Errorf("dead cell moved to x = %v", got)
	}
}

package systems

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cellwars/components"
	"github.com/pthm-cable/cellwars/config"
)

// Bounds represents the arena rectangle [0,Width] x [0,Height].
type Bounds struct {
	Width, Height float64
}

// WanderParams holds the heading-change interval range in ticks.
type WanderParams struct {
	MinTicks int
	MaxTicks int
}

// WanderParamsFromConfig extracts wander parameters from config.
func WanderParamsFromConfig(cfg *config.Config) WanderParams {
	return WanderParams{MinTicks: cfg.Wander.MinTicks, MaxTicks: cfg.Wander.MaxTicks}
}

// Wander advances one agent by one tick.
// The timer counts down by the speed multiplier so heading changes keep pace
// with displacement. Positions are clamped, not reflected: an agent pushed into
// a wall keeps its heading and stays pinned on that axis until the next turn.
func Wander(pos *components.Position, h *components.Heading, c *components.Cell, speedMul float64, p WanderParams, b Bounds, rng *rand.Rand) {
	c.WanderTimer -= speedMul
	if c.WanderTimer <= 0 {
		c.WanderTimer = float64(p.MinTicks + rng.Intn(p.MaxTicks-p.MinTicks+1))
		angle := rng.Float64() * 2 * math.Pi
		h.DX = math.Cos(angle)
		h.DY = math.Sin(angle)
	}

	pos.X = clamp(pos.X+h.DX*c.Speed*speedMul, 0, b.Width)
	pos.Y = clamp(pos.Y+h.DY*c.Speed*speedMul, 0, b.Height)
}

// MotionSystem moves every live agent.
type MotionSystem struct {
	filter *ecs.Filter3[components.Position, components.Heading, components.Cell]
	params WanderParams
	bounds Bounds
}

// NewMotionSystem creates a new motion system.
func NewMotionSystem(w *ecs.World, params WanderParams, bounds Bounds) *MotionSystem {
	return &MotionSystem{
		filter: ecs.NewFilter3[components.Position, components.Heading, components.Cell](w),
		params: params,
		bounds: bounds,
	}
}

// Update runs one motion tick.
func (s *MotionSystem) Update(speedMul float64, rng *rand.Rand) {
	query := s.filter.Query()
	for query.Next() {
		pos, h, c := query.Get()
		if !c.Alive {
			continue
		}
		Wander(pos, h, c, speedMul, s.params, s.bounds, rng)
	}
}

package systems

import (
	"math"

	"github.com/pthm-cable/cellwars/components"
	"github.com/pthm-cable/cellwars/config"
)

// GrowthParams maps mass to radius and speed.
type GrowthParams struct {
	RadiusFactor    float64
	SpeedBase       float64
	SpeedSlope      float64
	MinSpeed        float64
	SpeedMultiplier float64
}

// GrowthParamsFromConfig extracts growth parameters from the cell config.
func GrowthParamsFromConfig(cfg *config.Config) GrowthParams {
	return GrowthParams{
		RadiusFactor:    cfg.Cell.RadiusFactor,
		SpeedBase:       cfg.Cell.SpeedBase,
		SpeedSlope:      cfg.Cell.SpeedSlope,
		MinSpeed:        cfg.Cell.MinSpeed,
		SpeedMultiplier: cfg.Cell.SpeedMultiplier,
	}
}

// Grow returns the radius and speed for a given mass.
// Radius is floored to a whole number; larger cells are slower down to a floor.
func Grow(mass float64, p GrowthParams) (radius, speed float64) {
	radius = math.Floor(p.RadiusFactor * math.Sqrt(mass))
	speed = p.SpeedMultiplier * math.Max(p.MinSpeed, p.SpeedBase-p.SpeedSlope*radius)
	return radius, speed
}

// SetMass commits a new mass along with its derived radius and speed.
// Writes to a dead cell are ignored.
func SetMass(c *components.Cell, mass float64, p GrowthParams) {
	if !c.Alive {
		return
	}
	c.Mass = mass
	c.Radius, c.Speed = Grow(mass, p)
}

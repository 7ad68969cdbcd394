package components

// Cell holds the mutable state of an agent.
// Radius and Speed are derived from Mass and must only be written
// through systems.SetMass so they never drift from it.
type Cell struct {
	ID          uint32
	Team        int
	Mass        float64
	Radius      float64
	Speed       float64
	WanderTimer float64 // ticks until the next heading change
	Alive       bool
}

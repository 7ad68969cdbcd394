package components

// Position represents an entity's arena position.
type Position struct {
	X, Y float64
}

// Heading is the unit direction an agent is travelling in.
type Heading struct {
	DX, DY float64
}

// Package components defines ECS components for the simulation.
package components

// Color is an opaque 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Food is a stationary pellet. Alive is cleared when an agent eats it;
// the entity is removed at the end of the consumption phase.
type Food struct {
	Radius float64
	Color  Color
	Alive  bool
}

// Team tags an agent with its display color, assigned once at startup.
type Team struct {
	Color Color
}

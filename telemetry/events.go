// Package telemetry provides match statistics, bookmarks, CSV output and frame recording.
package telemetry

// EventType identifies telemetry events.
type EventType uint8

const (
	EventFoodEaten EventType = iota
	EventConsumption
	EventVictory
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventFoodEaten:
		return "food_eaten"
	case EventConsumption:
		return "consumption"
	case EventVictory:
		return "victory"
	}
	return "unknown"
}

// Event represents a single telemetry event raised during a tick.
type Event struct {
	Type     EventType `msgpack:"type"`
	Tick     int32     `msgpack:"tick"`
	EntityID uint32    `msgpack:"entity"`
	Team     int       `msgpack:"team"`

	// Optional fields depending on event type
	TargetID   uint32  `msgpack:"target,omitempty"`      // eaten agent for consumption events
	TargetTeam int     `msgpack:"target_team,omitempty"` // team of the eaten agent
	Count      int     `msgpack:"count,omitempty"`       // pellets eaten for food events
	Amount     float64 `msgpack:"amount,omitempty"`      // mass transferred, or winning mass
}

// NewFoodEatenEvent creates an event for pellets eaten during one tick.
func NewFoodEatenEvent(tick int32, pellets int, mass float64) Event {
	return Event{
		Type:   EventFoodEaten,
		Tick:   tick,
		Count:  pellets,
		Amount: mass,
	}
}

// NewConsumptionEvent creates an event for one agent absorbing another.
func NewConsumptionEvent(tick int32, eaterID uint32, eaterTeam int, eatenID uint32, eatenTeam int, mass float64) Event {
	return Event{
		Type:       EventConsumption,
		Tick:       tick,
		EntityID:   eaterID,
		Team:       eaterTeam,
		TargetID:   eatenID,
		TargetTeam: eatenTeam,
		Amount:     mass,
	}
}

// NewVictoryEvent creates the match-ending event. team is negative for a draw.
func NewVictoryEvent(tick int32, team int, mass float64) Event {
	return Event{
		Type:   EventVictory,
		Tick:   tick,
		Team:   team,
		Amount: mass,
	}
}

// SameTeam reports whether a consumption event was between teammates.
func (e Event) SameTeam() bool {
	return e.Type == EventConsumption && e.Team == e.TargetTeam
}

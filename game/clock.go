package game

import (
	"fmt"
	"time"
)

// Clock tracks match time. Time only accrues while playing and is scaled by
// the same multiplier that drives motion and food spawning.
type Clock struct {
	elapsedMs float64
	speed     float64
}

// NewClock creates a stopped clock with the given speed multiplier.
func NewClock(speed float64) Clock {
	return Clock{speed: speed}
}

// Advance adds one frame of real time, scaled by the multiplier.
func (c *Clock) Advance(dt time.Duration) {
	c.elapsedMs += float64(dt) / float64(time.Millisecond) * c.speed
}

// ElapsedMs returns scaled match time in milliseconds.
func (c *Clock) ElapsedMs() float64 {
	return c.elapsedMs
}

// Speed returns the current multiplier.
func (c *Clock) Speed() float64 {
	return c.speed
}

// SetSpeed replaces the multiplier. It affects time accrued from now on only.
func (c *Clock) SetSpeed(v float64) {
	c.speed = v
}

// FormatClock renders milliseconds as MM:SS, truncating partial seconds.
func FormatClock(ms float64) string {
	if ms < 0 {
		ms = 0
	}
	total := int64(ms) / 1000
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

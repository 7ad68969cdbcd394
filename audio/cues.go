// Package audio plays short synthesized cues for match events.
package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/cellwars/telemetry"
)

const sampleRate = beep.SampleRate(44100)

// tone is one note of a cue.
type tone struct {
	freq float64
	dur  time.Duration
}

// cue is a named note sequence.
type cue struct {
	name  string
	notes []tone
}

var (
	cueConsume = cue{"consume", []tone{{440, 60 * time.Millisecond}}}
	cueBetray  = cue{"betray", []tone{{220, 90 * time.Millisecond}}}
	cueVictory = cue{"victory", []tone{
		{523.25, 120 * time.Millisecond},
		{659.25, 120 * time.Millisecond},
		{783.99, 240 * time.Millisecond},
	}}
)

// cuesFor picks at most one cue of each kind for a frame's events.
// Pellet pickups happen nearly every tick and stay silent.
func cuesFor(events []telemetry.Event) []cue {
	var consume, betray, victory bool
	for _, e := range events {
		switch e.Type {
		case telemetry.EventConsumption:
			if e.SameTeam() {
				betray = true
			} else {
				consume = true
			}
		case telemetry.EventVictory:
			victory = true
		}
	}

	var out []cue
	if victory {
		return append(out, cueVictory)
	}
	if consume {
		out = append(out, cueConsume)
	}
	if betray {
		out = append(out, cueBetray)
	}
	return out
}

// Cues plays event cues through the system speaker.
// A Cues whose speaker failed to open stays silent.
type Cues struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	ready  bool
}

// NewCues opens the speaker. Failure is logged and leaves the player silent.
func NewCues(volume float64) *Cues {
	c := &Cues{mixer: &beep.Mixer{}, volume: volume}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		slog.Warn("audio disabled", "error", err)
		return c
	}
	speaker.Play(c.mixer)
	c.ready = true
	return c
}

// Play implements game.CuePlayer.
func (c *Cues) Play(events []telemetry.Event) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}

	for _, q := range cuesFor(events) {
		s, err := c.render(q)
		if err != nil {
			slog.Warn("cue render failed", "cue", q.name, "error", err)
			continue
		}
		speaker.Lock()
		c.mixer.Add(s)
		speaker.Unlock()
	}
}

func (c *Cues) render(q cue) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(q.notes))
	for _, n := range q.notes {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), sine))
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: c.volume}, nil
}

// Close stops playback.
func (c *Cues) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.ready = false
}

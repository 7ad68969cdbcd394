package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pthm-cable/cellwars/config"
	"github.com/pthm-cable/cellwars/telemetry"
)

// Frontend presents frames and collects input. Implementations own the
// window or terminal and its frame pacing.
type Frontend interface {
	// Poll returns the input gathered since the previous call.
	Poll() Input
	// Present draws a frame.
	Present(f *Frame)
	// Wait blocks until the next frame is due and returns the measured
	// frames per second.
	Wait() (fps float64)
	Close() error
}

// CuePlayer reacts to the events of a presented frame.
type CuePlayer interface {
	Play(events []telemetry.Event)
}

// Run drives matches on fe until quit is requested or ctx is cancelled.
// Every tick advances match time by the configured tick length, so the clock
// stays in step with motion and food spawning however fast frames arrive.
// A restart request replaces the match with a fresh one seeded from opts.Seed
// plus the restart count. Run closes fe before returning.
func Run(ctx context.Context, fe Frontend, opts Options) (err error) {
	defer func() {
		if cerr := fe.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing frontend: %w", cerr))
		}
	}()

	g := New(opts)
	defer func() { g.Close() }()

	var fps float64
	dt := TickDuration(g.cfg)
	restarts := 0

	for {
		if ctx.Err() != nil {
			slog.Info("run cancelled", "run", opts.RunID, "match", g.match, "tick", g.tick)
			return nil
		}

		in := fe.Poll()
		if in.Quit {
			slog.Info("quit requested", "run", opts.RunID, "match", g.match, "tick", g.tick)
			return nil
		}
		if in.Restart {
			g.Close()
			restarts++
			next := opts
			next.Seed = opts.Seed + int64(restarts)
			next.Match = restarts
			g = New(next)
			in = Input{}
		}

		g.Update(in, dt)

		frame := g.Frame(fps)
		g.recordFrame(&frame)
		fe.Present(&frame)
		if opts.Cues != nil && len(frame.Events) > 0 {
			opts.Cues.Play(frame.Events)
		}

		if opts.MaxTicks > 0 && int(g.tick) >= opts.MaxTicks {
			slog.Info("max ticks reached", "run", opts.RunID, "match", g.match, "tick", g.tick)
			return nil
		}

		fps = fe.Wait()
		g.RecordFrame()
	}
}

// TickDuration is the match time covered by one tick.
func TickDuration(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Derived.TickDT * float64(time.Second))
}

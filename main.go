package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/pthm-cable/cellwars/audio"
	"github.com/pthm-cable/cellwars/config"
	"github.com/pthm-cable/cellwars/game"
	"github.com/pthm-cable/cellwars/telemetry"
	"github.com/pthm-cable/cellwars/tui"
	"github.com/pthm-cable/cellwars/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	mode := flag.String("mode", "window", "Frontend: window, terminal or headless")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks in one match (0 = unlimited)")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	recordFrames := flag.String("record-frames", "", "Write every frame as msgpack to this file")
	speed := flag.String("speed", "", "Initial speed multiplier (empty = use config)")
	noAudio := flag.Bool("no-audio", false, "Disable event sound cues")
	volume := flag.Float64("volume", -2, "Cue volume in log2 steps (0 = unity)")

	flag.Parse()

	if err := run(*configPath, *mode, *seed, *maxTicks, *logStats, *statsWindow,
		*outputDir, *recordFrames, *speed, *noAudio, *volume); err != nil {
		slog.Error("run failed", "error", err)
		fmt.Fprintln(os.Stderr, "cellwars:", err)
		os.Exit(1)
	}
}

func run(configPath, mode string, seed int64, maxTicks int, logStats bool, statsWindow float64,
	outputDir, recordFrames, speed string, noAudio bool, volume float64) error {
	// Initialize config before anything else
	if err := config.Init(configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Cfg()

	// The terminal frontend owns stdout, so its logs go to the output dir or nowhere.
	var logOut io.Writer = os.Stdout
	if mode == "terminal" {
		logOut = io.Discard
		if outputDir != "" {
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			f, err := os.Create(filepath.Join(outputDir, "run.log"))
			if err != nil {
				return fmt.Errorf("creating log file: %w", err)
			}
			defer f.Close()
			logOut = f
		}
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	rngSeed := seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	runID := uuid.NewString()

	output, err := telemetry.NewOutputManager(outputDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := output.Close(); err != nil {
			slog.Error("closing output", "error", err)
		}
	}()
	if err := output.WriteConfig(cfg); err != nil {
		return err
	}

	recorder, err := telemetry.NewFrameRecorder(recordFrames)
	if err != nil {
		return err
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Error("closing frame recording", "error", err)
		}
	}()

	opts := game.Options{
		Config:         cfg,
		Seed:           rngSeed,
		RunID:          runID,
		SpeedText:      speed,
		LogStats:       logStats,
		StatsWindowSec: statsWindow,
		MaxTicks:       maxTicks,
		Output:         output,
		Recorder:       recorder,
	}

	var fe game.Frontend
	switch mode {
	case "window":
		fe = ui.NewWindow(cfg, "Cell Wars")
	case "terminal":
		t, err := tui.NewTerminal(cfg)
		if err != nil {
			return err
		}
		fe = t
	case "headless":
		fe = game.NewHeadless()
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}

	if !noAudio && mode != "headless" {
		cues := audio.NewCues(volume)
		defer cues.Close()
		opts.Cues = cues
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting",
		"run", runID,
		"mode", mode,
		"seed", rngSeed,
		"teams", cfg.Teams.Count,
		"players_per_team", cfg.Teams.PlayersPerTeam,
		"max_ticks", maxTicks,
		"output_dir", output.Dir(),
	)

	return game.Run(ctx, fe, opts)
}

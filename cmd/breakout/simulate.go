package main

import (
	"context"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plus3/breakout/game"
	"github.com/plus3/breakout/logging"
)

func newSimulateCmd(flags *rootFlags) *cobra.Command {
	var ticks int
	var report bool

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a headless game with the autopilot",
		Long: `Run the simulation without a window. The autopilot keeps the paddle under
the ball and restarts the level when it is complete. Runs are deterministic for
a given seed.

Examples:
  breakout simulate --ticks 3600
  breakout simulate --seed 42 --log-level debug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			app := game.NewApp(cfg.Settings())
			r := &Report{Seed: cfg.Game.Seed, Bricks: cfg.Settings().BrickCount()}
			runtime.ReadMemStats(&r.MemStatsStart)

			start := time.Now()
			summary := simulate(cmd.Context(), app, ticks, logger, &r.TickTime)
			r.TotalTime = time.Since(start)
			r.Summary = summary
			r.TickTime.Finalize()
			runtime.ReadMemStats(&r.MemStatsEnd)

			if report {
				return r.Generate(cmd.OutOrStdout())
			}
			logger.Info("simulation finished",
				"ticks", summary.Ticks,
				"score", summary.Score,
				"remaining", summary.RemainBricks,
				"levels", summary.Levels,
				"events", summary.Events,
				"elapsed", r.TotalTime.Round(time.Millisecond),
				"avg_tick", r.TickTime.Avg,
			)
			return nil
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", 3600, "Number of fixed ticks to simulate")
	cmd.Flags().BoolVar(&report, "report", false, "Print a Markdown report instead of a log line")
	return cmd
}

// summary describes a finished headless run.
type summary struct {
	Ticks        uint64
	Score        int
	RemainBricks int
	Levels       int
	Events       int
}

// simulate steps app with the autopilot until ticks have run, the game quits or
// ctx is cancelled. Tick durations are appended to times when it is not nil.
func simulate(ctx context.Context, app *game.App, ticks int, logger *log.Logger, times *Stats) summary {
	var s summary
	for i := 0; i < ticks; i++ {
		if ctx.Err() != nil {
			logger.Warn("simulation interrupted", "tick", i)
			break
		}
		tickStart := time.Now()
		events := app.Tick(game.Autopilot(app.World))
		if times != nil {
			times.Samples = append(times.Samples, time.Since(tickStart))
		}
		logging.Events(logger, events)
		s.Events += len(events)
		for _, evt := range events {
			if evt.Kind == game.EventLevelComplete {
				s.Levels++
			}
		}
		if app.Quit() {
			break
		}
	}
	s.Ticks = app.Ticks()
	s.Score = app.World.Scoreboard.Score
	s.RemainBricks = app.World.Scoreboard.RemainBricks
	return s
}

func logSummary(logger *log.Logger, app *game.App) {
	logger.Info("game over",
		"score", app.World.Scoreboard.Score,
		"remaining", app.World.Scoreboard.RemainBricks,
		"ticks", app.Ticks(),
	)
}

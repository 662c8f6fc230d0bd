// breakout is a Breakout clone with an animated shader background.
//
// Usage:
//
//	breakout [play]         - Play in a window
//	breakout tui            - Play in the terminal
//	breakout simulate       - Run a headless game with the autopilot
//	breakout config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Configuration file (YAML or TOML)
//	--log-level <level> - Override the configured log level
//	--seed <value>      - Override the brick wobble seed
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plus3/breakout/config"
	"github.com/plus3/breakout/logging"
)

type rootFlags struct {
	config   string
	logLevel string
	seed     uint64
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "breakout",
		Short: "Breakout+ - bounce the ball, clear the bricks",
		Long: `Breakout+ is a Breakout clone with a living paddle, wobbling bricks and an
animated shader background.

Controls:
  Left/Right - Move the paddle
  R          - Restart after the level is complete
  Esc        - Quit`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.config, "config", "", "Path to a YAML or TOML configuration file")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Uint64Var(&flags.seed, "seed", 0, "Brick wobble seed (0 = configured seed)")

	play := newPlayCmd(flags)
	root.RunE = play.RunE
	root.Flags().AddFlagSet(play.Flags())

	root.AddCommand(play)
	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newSimulateCmd(flags))
	root.AddCommand(newConfigCmd(flags))
	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, flags *rootFlags) (config.Config, *log.Logger, error) {
	cfg, source, err := config.Load(flags.config)
	if err != nil {
		return config.Config{}, nil, err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.seed != 0 {
		cfg.Game.Seed = flags.seed
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, _ = logging.WithRun(logger)
	logger.Debug("loaded config", "source", source)
	return cfg, logger, nil
}

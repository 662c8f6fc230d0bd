package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/plus3/breakout/audio"
	"github.com/plus3/breakout/game"
	"github.com/plus3/breakout/logging"
	"github.com/plus3/breakout/tui"
)

func newTUICmd(flags *rootFlags) *cobra.Command {
	var autopilot, mute bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Play in the terminal",
		Long: `Play in the terminal. Terminals do not report key releases, so a direction
stays held for a few ticks after its last key repeat.

Controls:
  Left/Right, A/D - Move the paddle
  P               - Toggle the autopilot
  R               - Restart after the level is complete
  Esc/Q           - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			// The alternate screen owns the terminal while the game runs.
			logger.SetOutput(io.Discard)

			player := audio.NewPlayer(cfg.Audio)
			if !mute {
				if err := player.Open(); err != nil {
					player.SetMuted(true)
				}
			}
			defer player.Close()

			opts := tui.DefaultOptions()
			opts.Autopilot = autopilot
			if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				opts.Width, opts.Height = w, h-1
			}
			opts.OnEvents = func(events []game.Event) {
				logging.Events(logger, events)
				player.HandleEvents(events)
			}

			app := game.NewApp(cfg.Settings())
			err = tui.Run(cmd.Context(), app, opts)
			logger.SetOutput(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logSummary(logger, app)
			return nil
		},
	}
	cmd.Flags().BoolVar(&autopilot, "autopilot", false, "Start with the autopilot steering")
	cmd.Flags().BoolVar(&mute, "mute", false, "Disable sound effects")
	return cmd
}

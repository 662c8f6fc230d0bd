package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/plus3/breakout/assets"
	"github.com/plus3/breakout/audio"
	"github.com/plus3/breakout/config"
	"github.com/plus3/breakout/debugui"
	debugui_ebiten "github.com/plus3/breakout/debugui/ebiten"
	"github.com/plus3/breakout/game"
	"github.com/plus3/breakout/logging"
	"github.com/plus3/breakout/render"
)

func newPlayCmd(flags *rootFlags) *cobra.Command {
	var debug, mute bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in a window",
		Long: `Open the game window.

Examples:
  breakout play
  breakout play --debug
  breakout play --mute --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			return runPlay(cfg, logger, debug, mute)
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "Show the Dear ImGui debug overlay")
	cmd.Flags().BoolVar(&mute, "mute", false, "Disable sound effects")
	return cmd
}

// windowGame adapts an App to ebiten.Game.
type windowGame struct {
	app      *game.App
	renderer *render.Renderer
	player   *audio.Player
	store    *assets.Store
	watcher  *assets.Watcher
	backend  *debugui_ebiten.ImguiBackend
	overlay  *debugui.Overlay
	logger   *log.Logger
	width    int
	height   int
}

func runPlay(cfg config.Config, logger *log.Logger, debug, mute bool) error {
	store := assets.NewStore(cfg.Render.AssetsDir)
	shader, fromDisk, err := store.Shader(assets.BackgroundShader)
	if err != nil {
		return err
	}
	logger.Debug("background shader", "from_disk", fromDisk)

	fonts, err := render.LoadFonts()
	if err != nil {
		return err
	}

	g := &windowGame{
		app:    game.NewApp(cfg.Settings()),
		player: audio.NewPlayer(cfg.Audio),
		store:  store,
		logger: logger,
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}

	if debug {
		g.backend = debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)

	g.renderer = render.New(render.Options{
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		MSAASamples:  cfg.Render.MSAASamples,
		ShaderSource: shader,
		Textures:     render.LoadTextures(store, logger),
		Fonts:        fonts,
		Logger:       logger,
	})

	if debug {
		g.overlay = debugui.NewOverlay()
		g.overlay.Install(g.app, g.renderer.Stats)
	}

	if mute {
		g.player.SetMuted(true)
	} else if err := g.player.Open(); err != nil {
		logger.Warn("sound disabled", "err", err)
	}
	defer g.player.Close()

	if cfg.Render.HotReload {
		w, err := assets.Watch(cfg.Render.AssetsDir, logger)
		if err != nil {
			logger.Warn("asset hot reload disabled", "err", err)
		} else {
			g.watcher = w
			defer w.Close()
		}
	}

	logger.Info("starting", "bricks", cfg.Settings().BrickCount(), "debug", debug)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("finished", "score", g.app.World.Scoreboard.Score, "ticks", g.app.Ticks())
	return nil
}

func readInput() game.Input {
	return game.Input{
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

func (g *windowGame) Update() error {
	input := readInput()
	if g.overlay != nil && g.overlay.Input.WantCaptureKeyboard {
		input = game.Input{}
	}

	dt := 1.0 / float64(ebiten.TPS())
	var events []game.Event
	if g.backend != nil {
		g.backend.Frame(func() {
			events = g.app.Update(dt, input)
		})
	} else {
		events = g.app.Update(dt, input)
	}

	logging.Events(g.logger, events)
	g.player.HandleEvents(events)
	g.reloadAssets()

	if g.app.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *windowGame) reloadAssets() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Poll() {
		if name != assets.BackgroundShader {
			g.logger.Debug("ignoring asset change", "asset", name)
			continue
		}
		src, _, err := g.store.Shader(name)
		if err != nil {
			g.logger.Error("read shader", "err", err)
			continue
		}
		if err := g.renderer.ReloadShader(src); err != nil {
			g.logger.Error("reload shader", "err", err)
		}
	}
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	if err := g.renderer.Draw(g.app.World, render.Screen{Image: screen}); err != nil {
		g.logger.Error("draw", "err", err)
	}
	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

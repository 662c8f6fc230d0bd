// Package config loads game settings from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/plus3/breakout/game"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full runtime configuration.
type Config struct {
	Window WindowConfig `yaml:"window" toml:"window"`
	Game   GameConfig   `yaml:"game" toml:"game"`
	Render RenderConfig `yaml:"render" toml:"render"`
	Audio  AudioConfig  `yaml:"audio" toml:"audio"`
	Log    LogConfig    `yaml:"log" toml:"log"`
}

// WindowConfig holds window settings.
type WindowConfig struct {
	Title  string `yaml:"title" toml:"title"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	VSync  bool   `yaml:"vsync" toml:"vsync"`
}

// GameConfig holds gameplay tuning.
type GameConfig struct {
	BrickRows        int     `yaml:"brick_rows" toml:"brick_rows"`
	BrickColumns     int     `yaml:"brick_columns" toml:"brick_columns"`
	PaddleSpeed      float32 `yaml:"paddle_speed" toml:"paddle_speed"`
	BallSpeed        float32 `yaml:"ball_speed" toml:"ball_speed"`
	Seed             uint64  `yaml:"seed" toml:"seed"`
	MaxTicksPerFrame int     `yaml:"max_ticks_per_frame" toml:"max_ticks_per_frame"`
}

// RenderConfig holds renderer settings.
type RenderConfig struct {
	AssetsDir   string `yaml:"assets_dir" toml:"assets_dir"`
	MSAASamples int    `yaml:"msaa_samples" toml:"msaa_samples"`
	HotReload   bool   `yaml:"hot_reload" toml:"hot_reload"`
}

// AudioConfig holds sound settings.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled" toml:"enabled"`
	Volume     float64 `yaml:"volume" toml:"volume"`
	SampleRate int     `yaml:"sample_rate" toml:"sample_rate"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `yaml:"level" toml:"level"`
	Timestamps bool   `yaml:"timestamps" toml:"timestamps"`
}

// Default returns the built-in configuration.
func Default() Config {
	settings := game.DefaultSettings()
	return Config{
		Window: WindowConfig{
			Title:  game.WindowTitle,
			Width:  game.WindowWidth,
			Height: game.WindowHeight,
			VSync:  true,
		},
		Game: GameConfig{
			BrickRows:        settings.BrickRows,
			BrickColumns:     settings.BrickColumns,
			PaddleSpeed:      settings.PaddleSpeed,
			BallSpeed:        settings.BallSpeed,
			Seed:             settings.Seed,
			MaxTicksPerFrame: settings.MaxTicksPerFrame,
		},
		Render: RenderConfig{
			AssetsDir:   "assets",
			MSAASamples: 4,
			HotReload:   false,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
		Log: LogConfig{
			Level:      "info",
			Timestamps: true,
		},
	}
}

// Settings converts the game section into simulation settings.
func (c Config) Settings() game.Settings {
	return game.Settings{
		BrickRows:        c.Game.BrickRows,
		BrickColumns:     c.Game.BrickColumns,
		PaddleSpeed:      c.Game.PaddleSpeed,
		BallSpeed:        c.Game.BallSpeed,
		Seed:             c.Game.Seed,
		MaxTicksPerFrame: c.Game.MaxTicksPerFrame,
	}
}

var logLevels = []string{"debug", "info", "warn", "error", "fatal"}

// Validate checks value ranges. Every problem is reported, wrapped in ErrInvalid.
func (c Config) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	check(c.Game.BrickRows > 0, "game.brick_rows must be positive, got %d", c.Game.BrickRows)
	check(c.Game.BrickColumns > 0, "game.brick_columns must be positive, got %d", c.Game.BrickColumns)
	// Larger grids would overlap the walls.
	check(c.Game.BrickColumns <= 5, "game.brick_columns must be at most 5, got %d", c.Game.BrickColumns)
	check(c.Game.BrickRows <= 5, "game.brick_rows must be at most 5, got %d", c.Game.BrickRows)
	check(c.Game.PaddleSpeed > 0, "game.paddle_speed must be positive")
	check(c.Game.BallSpeed > 0, "game.ball_speed must be positive")
	check(c.Game.MaxTicksPerFrame > 0, "game.max_ticks_per_frame must be positive")
	check(c.Render.MSAASamples >= 1, "render.msaa_samples must be at least 1")
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume %.2f out of range [0,1]", c.Audio.Volume)
	check(!c.Audio.Enabled || c.Audio.SampleRate > 0, "audio.sample_rate must be positive")

	level := strings.ToLower(c.Log.Level)
	known := false
	for _, l := range logLevels {
		if l == level {
			known = true
		}
	}
	check(known, "log.level %q is not one of %s", c.Log.Level, strings.Join(logLevels, ", "))

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

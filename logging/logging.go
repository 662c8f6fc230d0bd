// Package logging builds the structured loggers used by every frontend.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/plus3/breakout/config"
	"github.com/plus3/breakout/game"
)

const prefix = "breakout"

// New creates a logger writing to w with the configured level.
func New(w io.Writer, cfg config.LogConfig) (*log.Logger, error) {
	level, err := log.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("%w: log level %q", config.ErrInvalid, cfg.Level)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: cfg.Timestamps,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
		Level:           level,
	})
	logger.SetStyles(styles())
	return logger, nil
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.DebugLevel] = lipgloss.NewStyle().SetString("DEBU").Foreground(lipgloss.Color("63"))
	s.Levels[log.InfoLevel] = lipgloss.NewStyle().SetString("INFO").Foreground(lipgloss.Color("86"))
	s.Levels[log.WarnLevel] = lipgloss.NewStyle().SetString("WARN").Bold(true).Foreground(lipgloss.Color("214"))
	s.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString("ERRO").Bold(true).Foreground(lipgloss.Color("204"))
	s.Keys["run"] = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return s
}

// WithRun tags every record with a fresh run id and returns the id.
func WithRun(logger *log.Logger) (*log.Logger, string) {
	id := uuid.NewString()
	return logger.With("run", id), id
}

// Events logs collision outcomes at debug level. Level completion is logged at info.
func Events(logger *log.Logger, events []game.Event) {
	for _, evt := range events {
		switch evt.Kind {
		case game.EventLevelComplete:
			logger.Info("level complete", "score", evt.Score)
		case game.EventBrickHit:
			logger.Debug(evt.Kind.String(), "score", evt.Score, "streak", evt.Streak, "side", evt.Side)
		case game.EventPenalty:
			logger.Debug(evt.Kind.String(), "score", evt.Score, "penalty", evt.Penalty)
		default:
			logger.Debug(evt.Kind.String(), "side", evt.Side)
		}
	}
}

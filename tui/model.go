package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plus3/breakout/game"
)

// Options configure the terminal frontend.
type Options struct {
	TickRate  int
	HoldTicks int
	Autopilot bool
	Width     int
	Height    int
	// OnEvents receives the events of every tick.
	OnEvents func([]game.Event)
}

// DefaultOptions runs at the fixed simulation rate on an 80x24 grid.
func DefaultOptions() Options {
	return Options{
		TickRate:  int(1 / game.TimeStep),
		HoldTicks: DefaultHoldTicks,
		Width:     80,
		Height:    23,
	}
}

// Model is the Bubble Tea model running one App.
type Model struct {
	app       *game.App
	screen    *Screen
	keys      *KeyState
	opts      Options
	autopilot bool
	quitting  bool
}

func NewModel(app *game.App, opts Options) Model {
	if opts.TickRate < 1 {
		opts.TickRate = DefaultOptions().TickRate
	}
	return Model{
		app:       app,
		screen:    NewScreen(opts.Width, opts.Height),
		keys:      NewKeyState(opts.HoldTicks),
		opts:      opts,
		autopilot: opts.Autopilot,
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// One line is kept for the status bar.
		m.screen.Resize(msg.Width, msg.Height-1)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := MapKey(msg)
	if action == ActionAutopilot {
		m.autopilot = !m.autopilot
		return m, nil
	}
	if action == ActionQuit && msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	m.keys.Press(action)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	input := m.keys.Input()
	if m.autopilot {
		auto := game.Autopilot(m.app.World)
		input.Left, input.Right, input.Restart = auto.Left, auto.Right, auto.Restart
	}

	events := m.app.Tick(input)
	if m.opts.OnEvents != nil && len(events) > 0 {
		m.opts.OnEvents(events)
	}

	if m.app.Quit() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.opts.TickRate)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Draw(m.app.World)
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(m.status())
}

func (m Model) status() string {
	w := m.app.World
	mode := "manual"
	if m.autopilot {
		mode = "autopilot"
	}
	line := fmt.Sprintf("score %d  bricks %d  tick %d  [%s]  ←/→ move  p autopilot  esc quit",
		w.Scoreboard.Score, w.Scoreboard.RemainBricks, m.app.Ticks(), mode)
	if w.LevelComplete() {
		line += "  r restart"
	}
	return line
}

// Run starts the terminal frontend and blocks until the game quits or ctx is done.
func Run(ctx context.Context, app *game.App, opts Options) error {
	p := tea.NewProgram(
		NewModel(app, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal frontend: %w", err)
	}
	return nil
}

package game

import (
	"strconv"

	"github.com/plus3/breakout/ecs"
)

// ScoreboardSystem shows the score while the change timer is armed.
type ScoreboardSystem struct{}

func (ScoreboardSystem) Execute(frame *ecs.Frame[*World]) {
	sb := &frame.World.Scoreboard
	t, ok := sb.JustChanged.Get()
	if !ok {
		sb.Visible = false
		return
	}

	sb.Visible = true
	if t <= 0.1 {
		sb.JustChanged.Clear()
		return
	}
	sb.Text = strconv.Itoa(sb.Score)
	// After the last brick the score stays on screen.
	if sb.RemainBricks > 0 {
		sb.JustChanged.Arm(t * 0.9)
	}
}

// BonusTextSystem animates the "+N" streak notifier.
type BonusTextSystem struct{}

func (BonusTextSystem) Execute(frame *ecs.Frame[*World]) {
	bonus := &frame.World.Bonus
	t, ok := bonus.Show.Get()
	if !ok {
		bonus.Visible = false
		return
	}

	bonus.Visible = true
	if t <= 0.1 {
		bonus.Show.Clear()
		return
	}
	bonus.Text = "+" + strconv.Itoa(bonus.Row)
	bonus.FontSize = 100 * (2 - t)
	bonus.Alpha = t
	bonus.Show.Arm(t * 0.9)
}

// BackgroundClockSystem advances the elapsed time and copies it onto every
// background mesh.
type BackgroundClockSystem struct{}

func (BackgroundClockSystem) Execute(frame *ecs.Frame[*World]) {
	w := frame.World
	w.Elapsed += frame.DeltaTime
	for bg := range w.Backgrounds.Values() {
		bg.Time = float32(w.Elapsed)
	}
}

// ExitSystem records a quit request.
type ExitSystem struct{}

func (ExitSystem) Execute(frame *ecs.Frame[*World]) {
	if frame.World.Input.Quit {
		frame.World.QuitRequested = true
	}
}

// RestartSystem resets the level once it is complete and restart is pressed.
type RestartSystem struct{}

func (RestartSystem) Execute(frame *ecs.Frame[*World]) {
	w := frame.World
	if w.Input.Restart && w.LevelComplete() {
		frame.Commands.Defer(w.Reset)
	}
}

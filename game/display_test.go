package game_test

import (
	"testing"

	"github.com/plus3/breakout/game"
	"github.com/stretchr/testify/assert"
)

func TestScoreboardDisplay(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	sb := &w.Scoreboard

	runSystem(w, game.ScoreboardSystem{})
	assert.False(t, sb.Visible)

	sb.Score = 12
	sb.JustChanged.Arm(4)
	runSystem(w, game.ScoreboardSystem{})
	assert.True(t, sb.Visible)
	assert.Equal(t, "12", sb.Text)
	assert.InDelta(t, 3.6, sb.JustChanged.Value(), 1e-5)

	for sb.JustChanged.Armed() {
		runSystem(w, game.ScoreboardSystem{})
	}
	assert.True(t, sb.Visible, "visible on the frame the timer clears")

	runSystem(w, game.ScoreboardSystem{})
	assert.False(t, sb.Visible)
}

func TestScoreboardHoldsAfterCompletion(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	sb := &w.Scoreboard
	sb.RemainBricks = 0
	sb.Score = 40
	sb.JustChanged.Arm(100)

	for i := 0; i < 500; i++ {
		runSystem(w, game.ScoreboardSystem{})
	}
	assert.True(t, sb.Visible)
	assert.Equal(t, "40", sb.Text)
	assert.Equal(t, float32(100), sb.JustChanged.Value())
}

func TestBonusText(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	bonus := &w.Bonus

	runSystem(w, game.BonusTextSystem{})
	assert.False(t, bonus.Visible)

	bonus.Row = 3
	bonus.Show.Arm(1.0)
	runSystem(w, game.BonusTextSystem{})

	assert.True(t, bonus.Visible)
	assert.Equal(t, "+3", bonus.Text)
	assert.InDelta(t, 100, bonus.FontSize, 1e-4)
	assert.InDelta(t, 1, bonus.Alpha, 1e-6)
	assert.InDelta(t, 0.9, bonus.Show.Value(), 1e-6)

	runSystem(w, game.BonusTextSystem{})
	assert.InDelta(t, 110, bonus.FontSize, 1e-3)

	for bonus.Show.Armed() {
		runSystem(w, game.BonusTextSystem{})
	}
	runSystem(w, game.BonusTextSystem{})
	assert.False(t, bonus.Visible)
}

func TestBackgroundClock(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	for i := 0; i < 30; i++ {
		runSystem(w, game.BackgroundClockSystem{})
	}

	assert.InDelta(t, 0.5, w.Elapsed, 1e-9)
	for bg := range w.Backgrounds.Values() {
		assert.InDelta(t, 0.5, bg.Time, 1e-6)
	}
}

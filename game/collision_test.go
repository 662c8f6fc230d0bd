package game_test

import (
	"testing"

	"github.com/plus3/breakout/game"
	"github.com/plus3/breakout/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startVelocity = geom.V(0.5, -0.5).Normalize().Scale(400)

func TestLeftWallReflectsHorizontally(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	v := geom.V(-startVelocity.X, startVelocity.Y)
	// Overlap the left wall's right face by 5px.
	b := placeBall(t, w, geom.V(-457.5, 0), v)

	runSystem(w, game.CollisionSystem{})

	assert.Greater(t, b.Velocity.X, float32(0))
	assert.Equal(t, v.Y, b.Velocity.Y)
	assert.InDelta(t, 400, b.Velocity.Len(), 1e-3)
	assert.True(t, b.Bounce.Armed())
	assert.Equal(t, float32(1), b.Bounce.Value())

	events := w.Events.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, game.EventWallBounce, events[0].Kind)
	assert.Equal(t, geom.Right, events[0].Side)
}

func TestWallOnlyReflectsWhenMovingIntoFace(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	// Already moving away from the left wall.
	b := placeBall(t, w, geom.V(-457.5, 0), startVelocity)

	runSystem(w, game.CollisionSystem{})

	assert.Equal(t, startVelocity, b.Velocity)
	assert.True(t, b.Bounce.Armed(), "contact still counts as a collision")
}

func TestPaddleBottomHitHalvesScore(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	w.Scoreboard.Score = 7
	b := placeBall(t, w, geom.V(0, -250), geom.V(100, 300))

	runSystem(w, game.CollisionSystem{})

	assert.Equal(t, 3, w.Scoreboard.Score)
	assert.Equal(t, float32(-300), b.Velocity.Y)
	assert.Equal(t, float32(100), b.Velocity.X)
	assert.True(t, paddle(t, w).Bounce.Armed())
	assert.Equal(t, float32(4), w.Scoreboard.JustChanged.Value())
	assert.Equal(t, []game.EventKind{game.EventPaddleBounce, game.EventPenalty}, eventKinds(w.Events.Drain()))
}

func TestPaddleTopHitKeepsScore(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	w.Scoreboard.Score = 7
	w.Scoreboard.Keeping = true
	b := placeBall(t, w, geom.V(0, -210), startVelocity)

	runSystem(w, game.CollisionSystem{})

	assert.Equal(t, 7, w.Scoreboard.Score)
	assert.False(t, w.Scoreboard.Keeping)
	assert.Greater(t, b.Velocity.Y, float32(0))
	assert.True(t, paddle(t, w).Bounce.Armed())
	assert.False(t, w.Scoreboard.JustChanged.Armed())
}

func TestBottomWallResetsStreak(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	w.Scoreboard.Score = 5
	w.Scoreboard.BrickInRow = 3
	w.Scoreboard.Keeping = true
	b := placeBall(t, w, geom.V(0, -317.5), startVelocity)

	runSystem(w, game.CollisionSystem{})

	assert.Equal(t, 4, w.Scoreboard.Score)
	assert.Equal(t, 1, w.Scoreboard.BrickInRow)
	assert.False(t, w.Scoreboard.Keeping)
	assert.Greater(t, b.Velocity.Y, float32(0))
	assert.Equal(t, startVelocity.X, b.Velocity.X)
}

func TestScoreNeverNegative(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	placeBall(t, w, geom.V(0, -317.5), startVelocity)

	runSystem(w, game.CollisionSystem{})

	assert.Equal(t, 0, w.Scoreboard.Score)
	assert.False(t, w.Scoreboard.JustChanged.Armed(), "no score change, no display")
	assert.NotContains(t, eventKinds(w.Events.Drain()), game.EventPenalty)
}

func TestBrickHitScoresStreak(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	sb := &w.Scoreboard

	_, first := brickAt(t, w, 0, 0)
	v := geom.V(100, 300)
	b := placeBall(t, w, geom.V(first.Translation.X, first.Translation.Y-20), v)

	runSystem(w, game.CollisionSystem{})

	assert.Equal(t, 1, sb.Score)
	assert.Equal(t, 19, sb.RemainBricks)
	assert.Equal(t, 1, sb.BrickInRow)
	assert.True(t, sb.Keeping)
	assert.False(t, w.Bonus.Show.Armed())
	assert.True(t, first.Bounce.Armed())
	assert.True(t, first.Moving)
	assert.Equal(t, v, first.Velocity, "brick takes the pre-reflection velocity")
	assert.Equal(t, float32(-300), b.Velocity.Y)

	_, second := brickAt(t, w, 0, 2)
	placeBall(t, w, geom.V(second.Translation.X, second.Translation.Y-20), v)

	runSystem(w, game.CollisionSystem{})

	assert.Equal(t, 3, sb.Score)
	assert.Equal(t, 18, sb.RemainBricks)
	assert.Equal(t, 2, sb.BrickInRow)
	assert.Equal(t, 2, w.Bonus.Row)
	assert.Equal(t, float32(2), w.Bonus.Show.Value())
}

func TestMultipleBricksInOneTick(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	_, left := brickAt(t, w, 0, 0)
	_, right := brickAt(t, w, 0, 1)

	b := placeBall(t, w, geom.V(-255, 80), geom.V(0, 300))
	b.Scale = geom.V(40, 40)

	runSystem(w, game.CollisionSystem{})

	assert.Equal(t, 18, w.Scoreboard.RemainBricks)
	assert.Equal(t, 3, w.Scoreboard.Score)
	assert.True(t, left.Bounce.Armed())
	assert.True(t, right.Bounce.Armed())
	assert.Equal(t, 2, w.Bonus.Row)
}

func TestBouncingBrickIsSkipped(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	_, brick := brickAt(t, w, 0, 0)
	brick.Bounce.Arm(0.5)

	b := placeBall(t, w, geom.V(brick.Translation.X, brick.Translation.Y-20), geom.V(0, 300))

	runSystem(w, game.CollisionSystem{})

	assert.Equal(t, 20, w.Scoreboard.RemainBricks)
	assert.Equal(t, float32(300), b.Velocity.Y)
	assert.False(t, b.Bounce.Armed())
}

func TestLastBrickCompletesLevel(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	w.Scoreboard.RemainBricks = 1
	_, brick := brickAt(t, w, 1, 1)
	placeBall(t, w, geom.V(brick.Translation.X, brick.Translation.Y-20), geom.V(0, 300))

	runSystem(w, game.CollisionSystem{})

	assert.Equal(t, 0, w.Scoreboard.RemainBricks)
	assert.True(t, w.LevelComplete())
	assert.Equal(t, float32(100), w.Scoreboard.JustChanged.Value())
	assert.Contains(t, eventKinds(w.Events.Drain()), game.EventLevelComplete)

	// Further hits still bounce but never score or go below zero.
	score := w.Scoreboard.Score
	_, other := brickAt(t, w, 2, 2)
	b := placeBall(t, w, geom.V(other.Translation.X, other.Translation.Y-20), geom.V(0, 300))

	runSystem(w, game.CollisionSystem{})

	assert.Equal(t, 0, w.Scoreboard.RemainBricks)
	assert.Equal(t, score, w.Scoreboard.Score)
	assert.True(t, other.Bounce.Armed())
	assert.Less(t, b.Velocity.Y, float32(0))
}

func TestPenaltySkippedAfterCompletion(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	w.Scoreboard.RemainBricks = 0
	w.Scoreboard.Score = 9
	placeBall(t, w, geom.V(0, -250), geom.V(0, 300))

	runSystem(w, game.CollisionSystem{})

	assert.Equal(t, 9, w.Scoreboard.Score)
}

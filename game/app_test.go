package game_test

import (
	"fmt"
	"testing"

	"github.com/plus3/breakout/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorldLayout(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())

	assert.Equal(t, 1, w.Paddles.Len())
	assert.Equal(t, 4, w.Eyes.Len())
	assert.Equal(t, 1, w.Balls.Len())
	assert.Equal(t, 20, w.Bricks.Len())
	assert.Equal(t, 4, w.Walls.Len())
	assert.Equal(t, 1, w.Backgrounds.Len())

	assert.Equal(t, 20, w.Scoreboard.RemainBricks)
	assert.Equal(t, 1, w.Scoreboard.BrickInRow)
	assert.False(t, w.Scoreboard.JustChanged.Armed())

	_, first := brickAt(t, w, 0, 0)
	_, last := brickAt(t, w, 3, 4)
	assert.Equal(t, float32(-340), first.Translation.X)
	assert.Equal(t, float32(100), first.Translation.Y)
	assert.Equal(t, float32(340), last.Translation.X)
	assert.Equal(t, float32(250), last.Translation.Y)

	var kinds []game.ColliderKind
	for c := range w.Colliders() {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []game.ColliderKind{
		game.ColliderPaddle, game.ColliderSolid, game.ColliderSolid, game.ColliderSolid, game.ColliderSolid,
	}, kinds)
}

func TestWorldDespawnRoutesByKind(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	e, _ := brickAt(t, w, 0, 0)

	assert.Equal(t, game.KindBrick, game.KindOf(e))
	assert.True(t, w.Despawn(e))
	assert.False(t, w.Despawn(e))
	assert.Equal(t, 19, w.Bricks.Len())
	assert.Equal(t, 1, w.Balls.Len())
}

func TestWorldRecord(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())

	count := 0
	for e := range w.Entities() {
		require.NotNil(t, w.Record(e), "entity %d of kind %s", e.Index(), game.KindOf(e))
		count++
	}
	assert.Equal(t, 31, count)

	e, _, ok := w.Balls.Single()
	require.True(t, ok)
	ball, ok := w.Record(e).(*game.Ball)
	require.True(t, ok)
	assert.Equal(t, game.BallStart, ball.Translation)

	w.Despawn(e)
	assert.Nil(t, w.Record(e))
}

func TestAppUpdateRunsFixedTicks(t *testing.T) {
	app := game.NewApp(game.DefaultSettings())

	app.Update(0.04, game.Input{})
	assert.Equal(t, uint64(2), app.Ticks())

	app.Update(0.001, game.Input{})
	assert.Equal(t, uint64(2), app.Ticks())

	// A long stall is capped rather than replayed.
	app.Update(10, game.Input{})
	assert.Equal(t, uint64(2+game.DefaultSettings().MaxTicksPerFrame), app.Ticks())

	stats := app.Stats()
	require.Len(t, stats, 2)
	assert.Equal(t, "fixed", stats[0].Name)
	assert.Equal(t, "PaddleMovementSystem", stats[0].Systems[0].Name)
	assert.Equal(t, "CollisionSystem", stats[0].Systems[1].Name)
	assert.Equal(t, uint64(3), stats[1].Passes)
}

func TestAppQuit(t *testing.T) {
	app := game.NewApp(game.DefaultSettings())
	app.Update(game.TimeStep, game.Input{})
	assert.False(t, app.Quit())

	app.Update(game.TimeStep, game.Input{Quit: true})
	assert.True(t, app.Quit())
}

func TestAppRestartAfterCompletion(t *testing.T) {
	app := game.NewApp(game.DefaultSettings())
	w := app.World

	app.Tick(game.Input{Restart: true})
	assert.Equal(t, 0, w.Resets, "restart ignored while bricks remain")

	w.Scoreboard.RemainBricks = 0
	w.Scoreboard.Score = 55
	for e := range w.Bricks.All() {
		w.Despawn(e)
	}

	app.Tick(game.Input{Restart: true})

	assert.Equal(t, 1, w.Resets)
	assert.Equal(t, 20, w.Bricks.Len())
	assert.Equal(t, 20, w.Scoreboard.RemainBricks)
	assert.Equal(t, 0, w.Scoreboard.Score)
	assert.Equal(t, 1, w.Backgrounds.Len(), "background survives a restart")
}

// play runs the autopilot for n ticks and returns a fingerprint of the final state.
func play(t *testing.T, settings game.Settings, n int) string {
	t.Helper()
	app := game.NewApp(settings)
	for i := 0; i < n; i++ {
		app.Tick(game.Autopilot(app.World))
	}
	b := ball(t, app.World)
	return fmt.Sprintf("%d/%d/%.3f/%.3f/%d",
		app.World.Scoreboard.Score,
		app.World.Scoreboard.RemainBricks,
		b.Translation.X, b.Translation.Y,
		app.World.Bricks.Len())
}

func TestSimulationIsDeterministic(t *testing.T) {
	settings := game.DefaultSettings()
	settings.Seed = 42

	assert.Equal(t, play(t, settings, 1500), play(t, settings, 1500))
}

func TestSimulationInvariants(t *testing.T) {
	app := game.NewApp(game.DefaultSettings())
	w := app.World
	total := w.Settings.BrickCount()

	for i := 0; i < 3000; i++ {
		before := w.Scoreboard.RemainBricks
		events := app.Tick(game.Autopilot(w))

		sb := w.Scoreboard
		require.GreaterOrEqual(t, sb.Score, 0, "tick %d", i)
		require.GreaterOrEqual(t, sb.RemainBricks, 0, "tick %d", i)
		require.LessOrEqual(t, sb.RemainBricks, total, "tick %d", i)

		hits := 0
		for _, evt := range events {
			if evt.Kind == game.EventBrickHit {
				hits++
			}
		}
		if w.Resets == 0 {
			require.Equal(t, before-hits, sb.RemainBricks, "tick %d", i)
		}

		b := ball(t, w)
		require.InDelta(t, w.Settings.BallSpeed, b.Velocity.Len(), 0.01, "tick %d", i)
		require.Greater(t, b.Translation.X, -game.Bounds.X/2, "ball escaped at tick %d", i)
		require.Less(t, b.Translation.X, game.Bounds.X/2, "ball escaped at tick %d", i)
		require.Greater(t, b.Translation.Y, -game.Bounds.Y/2, "ball escaped at tick %d", i)
		require.Less(t, b.Translation.Y, game.Bounds.Y/2, "ball escaped at tick %d", i)
	}
}

func ExampleApp_Update() {
	app := game.NewApp(game.DefaultSettings())
	for i := 0; i < 60; i++ {
		app.Update(game.TimeStep+1e-9, game.Input{})
	}
	fmt.Println(app.Ticks(), app.World.Scoreboard.RemainBricks)
	// Output: 60 20
}

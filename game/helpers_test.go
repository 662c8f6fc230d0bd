package game_test

import (
	"testing"

	"github.com/plus3/breakout/ecs"
	"github.com/plus3/breakout/game"
	"github.com/plus3/breakout/geom"
	"github.com/stretchr/testify/require"
)

// runSystem executes a single system for one pass, flushing its commands.
func runSystem(w *game.World, system ecs.System[*game.World]) {
	s := ecs.NewScheduler("test", w)
	s.Register(system)
	s.Once(game.TimeStep)
}

func ball(t *testing.T, w *game.World) *game.Ball {
	t.Helper()
	_, b, ok := w.Balls.Single()
	require.True(t, ok, "world has no ball")
	return b
}

func paddle(t *testing.T, w *game.World) *game.Paddle {
	t.Helper()
	_, p, ok := w.Paddles.Single()
	require.True(t, ok, "world has no paddle")
	return p
}

// brickAt returns the brick spawned at the given grid position.
func brickAt(t *testing.T, w *game.World, row, col int) (ecs.Entity, *game.Brick) {
	t.Helper()
	e := ecs.NewEntity(uint32(game.KindBrick), uint32(row*w.Settings.BrickColumns+col))
	b := w.Bricks.Get(e)
	require.NotNil(t, b)
	return e, b
}

func placeBall(t *testing.T, w *game.World, pos, vel geom.Vec2) *game.Ball {
	b := ball(t, w)
	b.Translation = pos
	b.Velocity = vel
	return b
}

func eventKinds(events []game.Event) []game.EventKind {
	var kinds []game.EventKind
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

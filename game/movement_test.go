package game_test

import (
	"testing"

	"github.com/plus3/breakout/ecs"
	"github.com/plus3/breakout/game"
	"github.com/plus3/breakout/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerDecay(t *testing.T) {
	tests := []struct {
		name   string
		start  float32
		armed  bool
		expect float32
		still  bool
	}{
		{"unarmed stays unarmed", 0, false, 0, false},
		{"above floor decays", 1, true, 0.5, true},
		{"at floor clears", 0.1, true, 0, false},
		{"below floor clears", 0.05, true, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var timer game.Timer
			if tc.armed {
				timer.Arm(tc.start)
			}
			assert.Equal(t, tc.still, timer.Decay(0.5, 0.1))
			v, ok := timer.Get()
			assert.Equal(t, tc.still, ok)
			assert.Equal(t, tc.expect, v)
		})
	}
}

func TestPaddleClampedAndEyesFollow(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	w.Input = game.Input{Right: true}

	s := ecs.NewScheduler("paddle", w)
	s.Register(game.PaddleMovementSystem{})
	for i := 0; i < 120; i++ {
		s.Once(game.TimeStep)
	}

	p := paddle(t, w)
	assert.Equal(t, game.PaddleLimit, p.Translation.X)

	for eye := range w.Eyes.Values() {
		if eye.Left {
			assert.Equal(t, game.PaddleLimit-game.EyeDist, eye.Translation.X)
		} else {
			assert.Equal(t, game.PaddleLimit+game.EyeDist, eye.Translation.X)
		}
		assert.Equal(t, game.PaddleStart.Y, eye.Translation.Y)
	}

	w.Input = game.Input{Left: true, Right: true}
	s.Once(game.TimeStep)
	assert.Equal(t, game.PaddleLimit, p.Translation.X, "opposite keys cancel out")
}

func TestPaddleBounceScalesEyes(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	p := paddle(t, w)
	p.Bounce.Arm(1.0)

	runSystem(w, game.PaddleMovementSystem{})

	assert.InDelta(t, 0.8, p.Bounce.Value(), 1e-6)
	for eye := range w.Eyes.Values() {
		assert.InDelta(t, 0.75, eye.Scale.X, 1e-6)
		assert.InDelta(t, 0.75, eye.Scale.Y, 1e-6)
	}

	for p.Bounce.Armed() {
		runSystem(w, game.PaddleMovementSystem{})
	}
	for eye := range w.Eyes.Values() {
		assert.Equal(t, game.EyeScale, eye.Scale.X)
	}
}

func TestBallMovement(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	b := placeBall(t, w, geom.V(0, 0), geom.V(60, -120))

	runSystem(w, game.BallMovementSystem{})

	assert.InDelta(t, 1, b.Translation.X, 1e-4)
	assert.InDelta(t, -2, b.Translation.Y, 1e-4)
	assert.InDelta(t, 8.0/60, b.Rotation, 1e-6)
	assert.Equal(t, geom.V(game.BallSize, game.BallSize), b.Scale)

	b.Translation = geom.V(0, 0)
	b.Bounce.Arm(1.0)
	runSystem(w, game.BallMovementSystem{})

	assert.InDelta(t, 1.3, b.Translation.X, 1e-4)
	assert.Equal(t, geom.V(2*game.BallSize, 2*game.BallSize), b.Scale)
	assert.InDelta(t, 0.95, b.Bounce.Value(), 1e-6)

	passes := 1
	for b.Bounce.Armed() {
		runSystem(w, game.BallMovementSystem{})
		passes++
		require.Less(t, passes, 100)
	}
	assert.Equal(t, 60, passes)
}

func TestBrickDecaysThenDespawns(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	e, brick := brickAt(t, w, 0, 0)
	start := brick.Translation
	brick.Bounce.Arm(1.0)
	brick.Velocity = geom.V(0, 300)
	brick.Moving = true

	s := ecs.NewScheduler("bricks", w)
	s.Register(game.BrickMovementSystem{})

	s.Once(game.TimeStep)
	brick = w.Bricks.Get(e)
	require.NotNil(t, brick)
	assert.InDelta(t, 0.94, brick.Bounce.Value(), 1e-6)
	assert.Greater(t, brick.Translation.Y, start.Y)
	assert.InDelta(t, game.BrickSize.X*0.99, brick.Scale.X, 1e-3)
	assert.GreaterOrEqual(t, brick.Rotation, float32(0))
	assert.Less(t, brick.Rotation, float32(0.4))

	for i := 1; i < 46; i++ {
		s.Once(game.TimeStep)
	}
	assert.True(t, w.Bricks.Has(e), "still fading after 46 passes")

	s.Once(game.TimeStep)
	assert.False(t, w.Bricks.Has(e))
	assert.Equal(t, 19, w.Bricks.Len())
}

func TestIdleBricksStayPut(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	_, brick := brickAt(t, w, 3, 4)
	before := *brick

	runSystem(w, game.BrickMovementSystem{})

	assert.Equal(t, before, *brick)
}

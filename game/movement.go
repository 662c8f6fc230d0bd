package game

import (
	"github.com/plus3/breakout/ecs"
	"github.com/plus3/breakout/geom"
)

// PaddleMovementSystem moves the paddle from input and keeps its eyes attached.
type PaddleMovementSystem struct{}

func (PaddleMovementSystem) Execute(frame *ecs.Frame[*World]) {
	w := frame.World
	_, paddle, ok := w.Paddles.Single()
	if !ok {
		return
	}
	dt := float32(frame.DeltaTime)

	paddle.Translation.X += w.Input.Direction() * paddle.Speed * dt
	paddle.Translation.X = geom.Clamp(paddle.Translation.X, -PaddleLimit, PaddleLimit)

	bounce, bouncing := paddle.Bounce.Get()
	paddle.Bounce.Decay(0.8, 0.1)

	for eye := range w.Eyes.Values() {
		if eye.Left {
			eye.Translation.X = paddle.Translation.X - EyeDist
		} else {
			eye.Translation.X = paddle.Translation.X + EyeDist
		}
		if !bouncing {
			continue
		}
		scale := EyeScale
		if bounce > 0.1 {
			scale = EyeScale + 0.5*bounce
		}
		eye.Scale = geom.V(scale, scale)
	}
}

// BallMovementSystem integrates the ball and animates its bounce.
type BallMovementSystem struct{}

func (BallMovementSystem) Execute(frame *ecs.Frame[*World]) {
	_, ball, ok := frame.World.Balls.Single()
	if !ok {
		return
	}
	dt := float32(frame.DeltaTime)

	step := ball.Velocity.Scale(dt)
	ball.Translation = ball.Translation.Add(step)
	ball.Rotation += 8 * dt

	if t, ok := ball.Bounce.Get(); ok {
		ball.Translation = ball.Translation.Add(step.Scale(0.3))
		ball.Scale = geom.V(BallSize*(1+t), BallSize*(1+t))
		ball.Bounce.Decay(0.95, 0.05)
	}
}

// BrickMovementSystem animates hit bricks and despawns them once their
// bounce has faded.
type BrickMovementSystem struct{}

func (BrickMovementSystem) Execute(frame *ecs.Frame[*World]) {
	w := frame.World
	dt := float32(frame.DeltaTime)

	for e, brick := range w.Bricks.All() {
		if !brick.Bounce.Armed() {
			continue
		}
		if !brick.Bounce.Decay(0.94, 0.06) {
			frame.Commands.Despawn(e)
			continue
		}

		t := brick.Bounce.Value()
		if brick.Moving {
			brick.Translation = brick.Translation.Add(brick.Velocity.Scale(t * 0.6 * dt))
		}
		brick.Rotation = 0.4 * w.Rand.Float32()
		brick.Scale = brick.Scale.Scale(0.99)
	}
}

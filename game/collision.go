package game

import (
	"github.com/plus3/breakout/ecs"
	"github.com/plus3/breakout/geom"
)

// CollisionSystem resolves ball contacts against the paddle, walls and bricks
// and applies the scoring rules. It runs once per fixed tick.
type CollisionSystem struct{}

func (CollisionSystem) Execute(frame *ecs.Frame[*World]) {
	w := frame.World
	ballEntity, ball, ok := w.Balls.Single()
	if !ok {
		return
	}

	ballRect := ball.Rect()
	sb := &w.Scoreboard
	penalty := 0
	collided := false
	paddleHit := false
	scoreChanged := false

	for c := range w.Colliders() {
		side, hit := geom.Collide(ballRect, c.Rect)
		if !hit {
			continue
		}
		collided = true
		sb.Keeping = false
		_, reflectedY := reflect(&ball.Velocity, side)

		if c.Kind == ColliderPaddle {
			if side == geom.Bottom {
				penalty = 2
			}
			paddleHit = true
			w.Events.Push(Event{Kind: EventPaddleBounce, Entity: c.Entity, Side: side, Score: sb.Score})
			continue
		}

		if side == geom.Top && reflectedY {
			sb.BrickInRow = 1
			sb.Keeping = false
			penalty = max(penalty, 1)
		}
		w.Events.Push(Event{Kind: EventWallBounce, Entity: c.Entity, Side: side, Score: sb.Score})
		break
	}

	if sb.RemainBricks > 0 {
		switch {
		case penalty == 2:
			sb.Score /= 2
			scoreChanged = true
		case penalty == 1 && sb.Score > 0:
			sb.Score--
			scoreChanged = true
		}
		if scoreChanged {
			w.Events.Push(Event{Kind: EventPenalty, Entity: ballEntity, Score: sb.Score, Penalty: penalty})
		}
	}

	for e, brick := range w.Bricks.All() {
		side, hit := geom.Collide(ballRect, brick.Rect())
		if !hit || brick.Bounce.Armed() {
			continue
		}
		collided = true

		if sb.RemainBricks > 0 {
			if sb.Keeping {
				sb.BrickInRow++
				if sb.BrickInRow > 1 {
					w.Bonus.Row = sb.BrickInRow
					w.Bonus.Show.Arm(2.0)
				}
			}
			sb.Keeping = true
			sb.Score += sb.BrickInRow
			sb.RemainBricks--
			scoreChanged = true
			w.Events.Push(Event{Kind: EventBrickHit, Entity: e, Side: side, Score: sb.Score, Streak: sb.BrickInRow})

			if sb.RemainBricks == 0 {
				sb.JustChanged.Arm(100)
				w.Events.Push(Event{Kind: EventLevelComplete, Entity: e, Score: sb.Score})
			}
		}

		brick.Velocity = ball.Velocity
		brick.Moving = true
		brick.Bounce.Arm(1.0)
		reflect(&ball.Velocity, side)
	}

	if collided {
		ball.Bounce.Arm(1.0)
	}
	if paddleHit {
		for p := range w.Paddles.Values() {
			p.Bounce.Arm(1.0)
		}
	}
	if scoreChanged && !sb.JustChanged.Armed() {
		sb.JustChanged.Arm(4.0)
	}
}

// reflect flips the velocity component opposing side, but only when the
// velocity points into that face. It reports which axes were flipped.
func reflect(v *geom.Vec2, side geom.Side) (x, y bool) {
	switch side {
	case geom.Left:
		x = v.X > 0
	case geom.Right:
		x = v.X < 0
	case geom.Top:
		y = v.Y < 0
	case geom.Bottom:
		y = v.Y > 0
	}
	if x {
		v.X = -v.X
	}
	if y {
		v.Y = -v.Y
	}
	return x, y
}

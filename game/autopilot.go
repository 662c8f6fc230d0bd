package game

// Autopilot steers the paddle under the ball. It is used by headless runs
// and the attract mode of the terminal frontend.
func Autopilot(w *World) Input {
	_, ball, ok := w.Balls.Single()
	if !ok {
		return Input{}
	}
	_, paddle, ok := w.Paddles.Single()
	if !ok {
		return Input{}
	}

	const deadzone = 10
	dx := ball.Translation.X - paddle.Translation.X
	return Input{
		Left:    dx < -deadzone,
		Right:   dx > deadzone,
		Restart: w.LevelComplete(),
	}
}

package game

import "github.com/plus3/breakout/geom"

const (
	TimeStep = 1.0 / 60.0

	WindowWidth  = 980
	WindowHeight = 710
	WindowTitle  = "Breakout+"

	SpriteZ  float32 = 1.0
	BallSize float32 = 20.0
	EyeDist  float32 = 30.0
	EyeScale float32 = 0.25

	PaddleLimit float32 = 400.0

	WallThickness float32 = 35.0

	BrickSpacing float32 = 20.0

	BackgroundScale float32 = 700.0
)

var (
	PaddleStart = geom.V(0, -230)
	PaddleSize  = geom.V(120, 30)
	BallStart   = geom.V(0, -50)
	Bounds      = geom.V(960, 680)
	BrickSize   = geom.V(150, 30)
	BricksTop   = float32(100)

	ClearColor  = RGB(0.9, 0.9, 0.9)
	PaddleColor = RGB(0.5, 0.5, 1.0)
	BallColor   = RGB(0.2, 0.3, 1.0)
	BrickColor  = RGB(0.5, 0.5, 1.0)
	WallColor   = RGB(0.8, 0.8, 0.8)
	LabelColor  = RGB(0.5, 0.5, 1.0)
	ScoreColor  = RGB(1.0, 0.5, 0.5)
)

// Settings are the tunable parameters of a game session.
type Settings struct {
	BrickRows        int
	BrickColumns     int
	PaddleSpeed      float32
	BallSpeed        float32
	Seed             uint64
	MaxTicksPerFrame int
}

// DefaultSettings returns the classic 4x5 layout.
func DefaultSettings() Settings {
	return Settings{
		BrickRows:        4,
		BrickColumns:     5,
		PaddleSpeed:      500,
		BallSpeed:        400,
		Seed:             1,
		MaxTicksPerFrame: 5,
	}
}

// BrickCount returns the number of bricks spawned by a reset.
func (s Settings) BrickCount() int {
	return s.BrickRows * s.BrickColumns
}

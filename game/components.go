package game

import (
	"image/color"

	"github.com/plus3/breakout/geom"
)

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// NRGBA converts the color to 8-bit non-premultiplied components.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: unit8(c.R),
		G: unit8(c.G),
		B: unit8(c.B),
		A: unit8(c.A),
	}
}

func unit8(v float32) uint8 {
	return uint8(geom.Clamp(v, 0, 1)*255 + 0.5)
}

// Transform places a record in world space. For colored sprites Scale is the
// size in pixels; for textured sprites it multiplies the texture size.
type Transform struct {
	Translation geom.Vec2
	Z           float32
	Scale       geom.Vec2
	Rotation    float32
}

// Rect returns the axis-aligned box used for collision.
func (t Transform) Rect() geom.Rect {
	return geom.R(t.Translation, t.Scale)
}

type Paddle struct {
	Transform
	Color  Color
	Speed  float32
	Bounce Timer
}

// EyeSprite selects the texture drawn for a paddle eye.
type EyeSprite uint8

const (
	EyeWhite EyeSprite = iota
	EyePupil
)

type PaddleEye struct {
	Transform
	Left   bool
	Sprite EyeSprite
}

type Ball struct {
	Transform
	Color    Color
	Velocity geom.Vec2
	Bounce   Timer
}

type Brick struct {
	Transform
	Color    Color
	Velocity geom.Vec2
	Moving   bool
	Bounce   Timer
}

// ColliderKind selects how the collision system reacts to a hit.
type ColliderKind uint8

const (
	ColliderSolid ColliderKind = iota
	ColliderPaddle
)

func (k ColliderKind) String() string {
	if k == ColliderPaddle {
		return "paddle"
	}
	return "solid"
}

type Wall struct {
	Transform
	Color Color
	Kind  ColliderKind
}

// Scoreboard is the scoring resource. Visible and Text are written by the
// scoreboard display system.
type Scoreboard struct {
	Score        int
	RemainBricks int
	BrickInRow   int
	Keeping      bool
	JustChanged  Timer

	Visible bool
	Text    string
}

// BonusText is the "+N" streak notifier.
type BonusText struct {
	Show Timer
	Row  int

	Visible  bool
	Text     string
	FontSize float32
	Alpha    float32
}

// Background is the animated colored mesh drawn behind everything else.
type Background struct {
	Transform
	Mesh    *geom.Mesh
	Time    float32
	Visible bool
}

// Input is the control state sampled by the frontend once per frame.
type Input struct {
	Left    bool
	Right   bool
	Quit    bool
	Restart bool
}

// Direction returns -1, 0 or 1 for the horizontal paddle direction.
func (in Input) Direction() float32 {
	var d float32
	if in.Left {
		d -= 1
	}
	if in.Right {
		d += 1
	}
	return d
}

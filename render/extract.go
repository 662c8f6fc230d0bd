package render

import (
	"github.com/plus3/breakout/ecs"
	"github.com/plus3/breakout/game"
	"github.com/plus3/breakout/geom"
)

// SpriteTexture selects the image a sprite is drawn with.
type SpriteTexture uint8

const (
	TextureWhite SpriteTexture = iota
	TextureEye
	TexturePupil
)

// ExtractedMesh is a visible background mesh copied out of the world.
type ExtractedMesh struct {
	Entity    ecs.Entity
	Transform game.Transform
	Mesh      *geom.Mesh
}

// ExtractedSprite is a visible sprite copied out of the world.
type ExtractedSprite struct {
	Entity    ecs.Entity
	Transform game.Transform
	Color     game.Color
	Texture   SpriteTexture
}

// ExtractedText is one line of UI text.
type ExtractedText struct {
	Visible  bool
	Text     string
	FontSize float32
	Alpha    float32
}

// Extracted is the per-frame snapshot the render stages work from.
type Extracted struct {
	Time       float32
	Meshes     []ExtractedMesh
	Sprites    []ExtractedSprite
	Scoreboard ExtractedText
	Bonus      ExtractedText
}

// Extract copies everything the renderer needs out of w. The world is not
// touched after this returns.
func Extract(w *game.World, out *Extracted) {
	out.Meshes = out.Meshes[:0]
	out.Sprites = out.Sprites[:0]
	out.Time = float32(w.Elapsed)

	for e, bg := range w.Backgrounds.All() {
		if !bg.Visible || bg.Mesh == nil {
			continue
		}
		out.Time = bg.Time
		out.Meshes = append(out.Meshes, ExtractedMesh{Entity: e, Transform: bg.Transform, Mesh: bg.Mesh})
	}

	for e, p := range w.Paddles.All() {
		out.Sprites = append(out.Sprites, ExtractedSprite{Entity: e, Transform: p.Transform, Color: p.Color})
	}
	for e, eye := range w.Eyes.All() {
		tex := TextureEye
		if eye.Sprite == game.EyePupil {
			tex = TexturePupil
		}
		out.Sprites = append(out.Sprites, ExtractedSprite{Entity: e, Transform: eye.Transform, Color: game.RGB(1, 1, 1), Texture: tex})
	}
	for e, b := range w.Balls.All() {
		out.Sprites = append(out.Sprites, ExtractedSprite{Entity: e, Transform: b.Transform, Color: b.Color})
	}
	for e, b := range w.Bricks.All() {
		out.Sprites = append(out.Sprites, ExtractedSprite{Entity: e, Transform: b.Transform, Color: b.Color})
	}
	for e, wall := range w.Walls.All() {
		out.Sprites = append(out.Sprites, ExtractedSprite{Entity: e, Transform: wall.Transform, Color: wall.Color})
	}

	out.Scoreboard = ExtractedText{
		Visible: w.Scoreboard.Visible,
		Text:    w.Scoreboard.Text,
		Alpha:   1,
	}
	out.Bonus = ExtractedText{
		Visible:  w.Bonus.Visible,
		Text:     w.Bonus.Text,
		FontSize: w.Bonus.FontSize,
		Alpha:    w.Bonus.Alpha,
	}
}

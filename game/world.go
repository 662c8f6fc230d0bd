package game

import (
	"iter"
	"math/rand/v2"

	"github.com/plus3/breakout/ecs"
	"github.com/plus3/breakout/geom"
)

// World owns one arena per entity kind plus the global resources.
type World struct {
	Paddles     *ecs.Arena[Paddle]
	Eyes        *ecs.Arena[PaddleEye]
	Balls       *ecs.Arena[Ball]
	Bricks      *ecs.Arena[Brick]
	Walls       *ecs.Arena[Wall]
	Backgrounds *ecs.Arena[Background]

	Scoreboard Scoreboard
	Bonus      BonusText
	Input      Input
	Events     ecs.Events[Event]

	// Elapsed is the number of seconds since the world was created.
	Elapsed float64
	Rand    *rand.Rand

	Settings      Settings
	QuitRequested bool
	Resets        int
}

// NewWorld creates a world and spawns the initial level.
func NewWorld(settings Settings) *World {
	w := &World{
		Paddles:     ecs.NewArena[Paddle](uint32(KindPaddle)),
		Eyes:        ecs.NewArena[PaddleEye](uint32(KindEye)),
		Balls:       ecs.NewArena[Ball](uint32(KindBall)),
		Bricks:      ecs.NewArena[Brick](uint32(KindBrick)),
		Walls:       ecs.NewArena[Wall](uint32(KindWall)),
		Backgrounds: ecs.NewArena[Background](uint32(KindBackground)),
		Settings:    settings,
		Rand:        rand.New(rand.NewPCG(settings.Seed, settings.Seed^0x9e3779b97f4a7c15)),
	}
	w.setup()
	return w
}

// Reset restores the initial level. Elapsed time and the background keep running.
func (w *World) Reset() {
	w.Paddles.Clear()
	w.Eyes.Clear()
	w.Balls.Clear()
	w.Bricks.Clear()
	w.Walls.Clear()
	w.Resets++
	w.setupLevel()
}

func (w *World) setup() {
	w.Backgrounds.Insert(Background{
		Transform: Transform{
			Scale: geom.V(BackgroundScale, BackgroundScale),
		},
		Mesh:    BackgroundMesh(),
		Visible: true,
	})
	w.setupLevel()
}

func (w *World) setupLevel() {
	w.Scoreboard = Scoreboard{
		RemainBricks: w.Settings.BrickCount(),
		BrickInRow:   1,
	}
	w.Bonus = BonusText{}

	// The paddle is spawned before the walls so the collision scan sees it first.
	w.Paddles.Insert(Paddle{
		Transform: Transform{Translation: PaddleStart, Z: SpriteZ, Scale: PaddleSize},
		Color:     PaddleColor,
		Speed:     w.Settings.PaddleSpeed,
	})

	eyes := []struct {
		left   bool
		sprite EyeSprite
		z      float32
	}{
		{true, EyeWhite, SpriteZ + 0.1},
		{true, EyePupil, SpriteZ + 0.2},
		{false, EyeWhite, SpriteZ},
		{false, EyePupil, SpriteZ + 0.2},
	}
	for _, eye := range eyes {
		x := EyeDist
		if eye.left {
			x = -EyeDist
		}
		w.Eyes.Insert(PaddleEye{
			Transform: Transform{
				Translation: geom.V(x, PaddleStart.Y),
				Z:           eye.z,
				Scale:       geom.V(EyeScale, EyeScale),
			},
			Left:   eye.left,
			Sprite: eye.sprite,
		})
	}

	w.Balls.Insert(Ball{
		Transform: Transform{Translation: BallStart, Z: SpriteZ, Scale: geom.V(BallSize, BallSize)},
		Color:     BallColor,
		Velocity:  geom.V(0.5, -0.5).Normalize().Scale(w.Settings.BallSpeed),
	})

	walls := []Transform{
		{Translation: geom.V(-Bounds.X/2, 0), Scale: geom.V(WallThickness, Bounds.Y+WallThickness)},
		{Translation: geom.V(Bounds.X/2, 0), Scale: geom.V(WallThickness, Bounds.Y+WallThickness)},
		{Translation: geom.V(0, -Bounds.Y/2), Scale: geom.V(Bounds.X+WallThickness, WallThickness)},
		{Translation: geom.V(0, Bounds.Y/2), Scale: geom.V(Bounds.X+WallThickness, WallThickness)},
	}
	for _, t := range walls {
		t.Z = SpriteZ
		w.Walls.Insert(Wall{Transform: t, Color: WallColor, Kind: ColliderSolid})
	}

	cols := w.Settings.BrickColumns
	bricksWidth := float32(cols)*(BrickSize.X+BrickSpacing) - BrickSpacing
	offset := geom.V(-(bricksWidth-BrickSize.X)/2, BricksTop)
	for row := 0; row < w.Settings.BrickRows; row++ {
		y := float32(row) * (BrickSize.Y + BrickSpacing)
		for col := 0; col < cols; col++ {
			pos := geom.V(float32(col)*(BrickSize.X+BrickSpacing), y).Add(offset)
			w.Bricks.Insert(Brick{
				Transform: Transform{Translation: pos, Z: SpriteZ, Scale: BrickSize},
				Color:     BrickColor,
			})
		}
	}
}

// BackgroundMesh returns the unit quad with a black corner fading to yellow.
func BackgroundMesh() *geom.Mesh {
	black := [4]float32{0, 0, 0, 1}
	yellow := [4]float32{1, 1, 0, 1}
	return &geom.Mesh{
		Topology: geom.TriangleList,
		Positions: [][3]float32{
			{-1, -1, 0},
			{-1, 1, 0},
			{1, 1, 0},
			{1, -1, 0},
		},
		Colors:  [][4]float32{black, yellow, yellow, yellow},
		Indices: []uint32{0, 2, 1, 0, 3, 2},
	}
}

// Despawn removes an entity from the arena named by its kind.
func (w *World) Despawn(e ecs.Entity) bool {
	switch KindOf(e) {
	case KindPaddle:
		return w.Paddles.Remove(e)
	case KindEye:
		return w.Eyes.Remove(e)
	case KindBall:
		return w.Balls.Remove(e)
	case KindBrick:
		return w.Bricks.Remove(e)
	case KindWall:
		return w.Walls.Remove(e)
	case KindBackground:
		return w.Backgrounds.Remove(e)
	}
	return false
}

// Record returns a pointer to the record behind e, or nil when e is stale.
func (w *World) Record(e ecs.Entity) any {
	switch KindOf(e) {
	case KindPaddle:
		if p := w.Paddles.Get(e); p != nil {
			return p
		}
	case KindEye:
		if p := w.Eyes.Get(e); p != nil {
			return p
		}
	case KindBall:
		if p := w.Balls.Get(e); p != nil {
			return p
		}
	case KindBrick:
		if p := w.Bricks.Get(e); p != nil {
			return p
		}
	case KindWall:
		if p := w.Walls.Get(e); p != nil {
			return p
		}
	case KindBackground:
		if p := w.Backgrounds.Get(e); p != nil {
			return p
		}
	}
	return nil
}

// Entities yields every live entity, grouped by kind in spawn order.
func (w *World) Entities() iter.Seq[ecs.Entity] {
	return func(yield func(ecs.Entity) bool) {
		seqs := []iter.Seq[ecs.Entity]{
			keys(w.Paddles.All()),
			keys(w.Eyes.All()),
			keys(w.Balls.All()),
			keys(w.Bricks.All()),
			keys(w.Walls.All()),
			keys(w.Backgrounds.All()),
		}
		for _, seq := range seqs {
			for e := range seq {
				if !yield(e) {
					return
				}
			}
		}
	}
}

func keys[T any](seq iter.Seq2[ecs.Entity, T]) iter.Seq[ecs.Entity] {
	return func(yield func(ecs.Entity) bool) {
		for e := range seq {
			if !yield(e) {
				return
			}
		}
	}
}

// Collider is one entry of the collider scan.
type Collider struct {
	Entity ecs.Entity
	Kind   ColliderKind
	Rect   geom.Rect
}

// Colliders yields the paddle followed by the walls in spawn order.
func (w *World) Colliders() iter.Seq[Collider] {
	return func(yield func(Collider) bool) {
		for e, p := range w.Paddles.All() {
			if !yield(Collider{Entity: e, Kind: ColliderPaddle, Rect: p.Rect()}) {
				return
			}
		}
		for e, wall := range w.Walls.All() {
			if !yield(Collider{Entity: e, Kind: wall.Kind, Rect: wall.Rect()}) {
				return
			}
		}
	}
}

// LevelComplete reports whether every brick has been scored.
func (w *World) LevelComplete() bool {
	return w.Scoreboard.RemainBricks == 0
}

// Stats reports the occupancy of every arena.
func (w *World) Stats() []ecs.ArenaStats {
	return []ecs.ArenaStats{
		w.Paddles.Stats(),
		w.Eyes.Stats(),
		w.Balls.Stats(),
		w.Bricks.Stats(),
		w.Walls.Stats(),
		w.Backgrounds.Stats(),
	}
}

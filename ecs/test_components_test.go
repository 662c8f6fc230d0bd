package ecs_test

import "github.com/plus3/breakout/ecs"

const (
	kindMover uint32 = iota + 1
	kindMarker
)

// Common test record types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Mover struct {
	Position
	Velocity
}

type Marker struct {
	Name string
}

// testWorld is a minimal world holding one arena per kind.
type testWorld struct {
	Movers  *ecs.Arena[Mover]
	Markers *ecs.Arena[Marker]
}

func newTestWorld() *testWorld {
	return &testWorld{
		Movers:  ecs.NewArena[Mover](kindMover),
		Markers: ecs.NewArena[Marker](kindMarker),
	}
}

func (w *testWorld) Despawn(e ecs.Entity) bool {
	switch e.Kind() {
	case kindMover:
		return w.Movers.Remove(e)
	case kindMarker:
		return w.Markers.Remove(e)
	}
	return false
}

// Package game holds the Breakout+ world: typed arenas for every entity kind,
// the scoring resources, and the systems that advance them.
package game

import "github.com/plus3/breakout/ecs"

// Kind tags every entity handle with the arena that owns it.
type Kind uint32

const (
	KindPaddle Kind = iota + 1
	KindEye
	KindBall
	KindBrick
	KindWall
	KindBackground
)

func (k Kind) String() string {
	switch k {
	case KindPaddle:
		return "paddle"
	case KindEye:
		return "eye"
	case KindBall:
		return "ball"
	case KindBrick:
		return "brick"
	case KindWall:
		return "wall"
	case KindBackground:
		return "background"
	}
	return "unknown"
}

// KindOf returns the kind encoded in an entity handle.
func KindOf(e ecs.Entity) Kind {
	return Kind(e.Kind())
}

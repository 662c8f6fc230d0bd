package game

import (
	"fmt"

	"github.com/plus3/breakout/ecs"
	"github.com/plus3/breakout/geom"
)

// EventKind classifies collision outcomes reported to the host loop.
type EventKind uint8

const (
	EventWallBounce EventKind = iota + 1
	EventPaddleBounce
	EventBrickHit
	EventPenalty
	EventLevelComplete
)

func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall-bounce"
	case EventPaddleBounce:
		return "paddle-bounce"
	case EventBrickHit:
		return "brick-hit"
	case EventPenalty:
		return "penalty"
	case EventLevelComplete:
		return "level-complete"
	}
	return fmt.Sprintf("event(%d)", uint8(k))
}

// Event describes one collision outcome.
type Event struct {
	Kind    EventKind
	Entity  ecs.Entity
	Side    geom.Side
	Score   int
	Streak  int
	Penalty int
}

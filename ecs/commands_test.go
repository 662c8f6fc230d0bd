package ecs_test

import (
	"testing"

	"github.com/plus3/breakout/ecs"
	"github.com/stretchr/testify/assert"
)

type despawnSystem struct {
	target ecs.Entity
}

func (s *despawnSystem) Execute(frame *ecs.Frame[*testWorld]) {
	frame.Commands.Despawn(s.target)
}

type probeSystem struct {
	seenDuringPass bool
	target         ecs.Entity
}

func (s *probeSystem) Execute(frame *ecs.Frame[*testWorld]) {
	s.seenDuringPass = frame.World.Movers.Has(s.target)
}

func TestCommandsDespawnIsDeferred(t *testing.T) {
	world := newTestWorld()
	e := world.Movers.Insert(Mover{})

	scheduler := ecs.NewScheduler("test", world)
	scheduler.Register(&despawnSystem{target: e})
	probe := &probeSystem{target: e}
	scheduler.Register(probe)

	removed := scheduler.Once(1.0 / 60)

	assert.True(t, probe.seenDuringPass, "entity must survive until the end of the pass")
	assert.Equal(t, 1, removed)
	assert.False(t, world.Movers.Has(e))
}

func TestCommandsDeduplicate(t *testing.T) {
	world := newTestWorld()
	e := world.Movers.Insert(Mover{})
	other := world.Markers.Insert(Marker{Name: "keep"})

	cmds := ecs.NewCommands()
	cmds.Despawn(e)
	cmds.Despawn(e)
	assert.Equal(t, 1, cmds.Pending())

	assert.Equal(t, 1, cmds.Flush(world))
	assert.Equal(t, 0, cmds.Pending())
	assert.True(t, world.Markers.Has(other))

	// The dedupe set is reset by Flush.
	cmds.Despawn(e)
	assert.Equal(t, 1, cmds.Pending())
	assert.Equal(t, 0, cmds.Flush(world), "stale handle removes nothing")
}

func TestCommandsDeferRunsAfterDespawns(t *testing.T) {
	world := newTestWorld()
	e := world.Movers.Insert(Mover{})

	cmds := ecs.NewCommands()
	var liveAtDefer int = -1
	cmds.Defer(func() {
		liveAtDefer = world.Movers.Len()
	})
	cmds.Despawn(e)

	cmds.Flush(world)
	assert.Equal(t, 0, liveAtDefer)
}

func TestCommandsEmptyFlush(t *testing.T) {
	cmds := ecs.NewCommands()
	assert.Equal(t, 0, cmds.Flush(newTestWorld()))
}

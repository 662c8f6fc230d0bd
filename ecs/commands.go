package ecs

import "github.com/kamstrup/intmap"

// Despawner is implemented by worlds that can remove an entity given only its handle.
type Despawner interface {
	Despawn(e Entity) bool
}

// Commands provides a buffer for deferred world operations that are executed at the end of a pass.
// This keeps arenas stable while systems iterate them.
type Commands struct {
	despawns []Entity
	defers   []func()
	seen     *intmap.Map[Entity, struct{}]
}

// NewCommands creates an empty command buffer.
func NewCommands() *Commands {
	return &Commands{
		seen: intmap.New[Entity, struct{}](16),
	}
}

// Despawn queues removal of an entity. Queuing the same entity twice removes it once.
func (c *Commands) Despawn(e Entity) {
	if _, ok := c.seen.Get(e); ok {
		return
	}
	c.seen.Put(e, struct{}{})
	c.despawns = append(c.despawns, e)
}

// Defer queues a function to run after all despawns of this pass.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.despawns) + len(c.defers)
}

// Flush applies all queued operations to the world, resetting the buffer state.
// It returns the number of entities actually removed.
func (c *Commands) Flush(world Despawner) int {
	removed := 0
	for _, e := range c.despawns {
		if world.Despawn(e) {
			removed++
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.despawns = c.despawns[:0]
	c.defers = c.defers[:0]
	c.seen.Clear()
	return removed
}

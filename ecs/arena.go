package ecs

import (
	"iter"

	"github.com/kamstrup/intmap"
)

const (
	arenaBlockSize = 64
)

// ArenaStats describes the occupancy of a single arena.
type ArenaStats struct {
	Kind      uint32
	Live      int
	Free      int
	Capacity  int
	HighWater int
}

// Arena stores records of a single entity kind in fixed-size blocks.
// Slots are stable: removing a record marks its slot free and the next Insert reuses it.
type Arena[T any] struct {
	kind      uint32
	blocks    [][arenaBlockSize]T
	filled    [][arenaBlockSize]bool
	freeSlots []int
	nextIndex int
	live      int
}

// NewArena creates an empty arena whose handles carry the given kind tag.
func NewArena[T any](kind uint32) *Arena[T] {
	return &Arena[T]{kind: kind}
}

// Kind returns the tag encoded into every handle issued by this arena.
func (a *Arena[T]) Kind() uint32 {
	return a.kind
}

// Insert stores a record and returns its handle.
func (a *Arena[T]) Insert(item T) Entity {
	var index int
	if len(a.freeSlots) > 0 {
		index = a.freeSlots[len(a.freeSlots)-1]
		a.freeSlots = a.freeSlots[:len(a.freeSlots)-1]
	} else {
		index = a.nextIndex
		a.nextIndex++
		if index/arenaBlockSize >= len(a.blocks) {
			a.blocks = append(a.blocks, [arenaBlockSize]T{})
			a.filled = append(a.filled, [arenaBlockSize]bool{})
		}
	}

	blockIdx := index / arenaBlockSize
	slotIdx := index % arenaBlockSize
	a.blocks[blockIdx][slotIdx] = item
	a.filled[blockIdx][slotIdx] = true
	a.live++
	return NewEntity(a.kind, uint32(index))
}

func (a *Arena[T]) slot(e Entity) (int, int, bool) {
	if e.Kind() != a.kind {
		return 0, 0, false
	}
	index := int(e.Index())
	blockIdx := index / arenaBlockSize
	slotIdx := index % arenaBlockSize
	if blockIdx >= len(a.blocks) || !a.filled[blockIdx][slotIdx] {
		return 0, 0, false
	}
	return blockIdx, slotIdx, true
}

// Get returns a pointer to the record, or nil when the handle is stale or of another kind.
// The pointer is valid until the record is removed or the arena is compacted.
func (a *Arena[T]) Get(e Entity) *T {
	blockIdx, slotIdx, ok := a.slot(e)
	if !ok {
		return nil
	}
	return &a.blocks[blockIdx][slotIdx]
}

// Has reports whether the handle refers to a live record.
func (a *Arena[T]) Has(e Entity) bool {
	_, _, ok := a.slot(e)
	return ok
}

// Remove frees the record's slot. Removing a stale handle is a no-op.
func (a *Arena[T]) Remove(e Entity) bool {
	blockIdx, slotIdx, ok := a.slot(e)
	if !ok {
		return false
	}
	var zero T
	a.blocks[blockIdx][slotIdx] = zero
	a.filled[blockIdx][slotIdx] = false
	a.freeSlots = append(a.freeSlots, int(e.Index()))
	a.live--
	return true
}

// Len returns the number of live records.
func (a *Arena[T]) Len() int {
	return a.live
}

// Clear drops every record and resets the slot counter.
func (a *Arena[T]) Clear() {
	a.blocks = nil
	a.filled = nil
	a.freeSlots = nil
	a.nextIndex = 0
	a.live = 0
}

// All iterates live records in slot order.
func (a *Arena[T]) All() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for i := 0; i < a.nextIndex; i++ {
			blockIdx := i / arenaBlockSize
			slotIdx := i % arenaBlockSize
			if !a.filled[blockIdx][slotIdx] {
				continue
			}
			if !yield(NewEntity(a.kind, uint32(i)), &a.blocks[blockIdx][slotIdx]) {
				return
			}
		}
	}
}

// Values iterates live records without their handles.
func (a *Arena[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, item := range a.All() {
			if !yield(item) {
				return
			}
		}
	}
}

// Single returns the first live record. It is meant for kinds that hold exactly one
// record, such as the ball or the paddle.
func (a *Arena[T]) Single() (Entity, *T, bool) {
	for e, item := range a.All() {
		return e, item, true
	}
	return 0, nil, false
}

// Compact moves live records to the front of the arena and returns the handle remapping.
// Handles not present in the returned map were unchanged.
func (a *Arena[T]) Compact() *intmap.Map[Entity, Entity] {
	moved := intmap.New[Entity, Entity](a.live)
	if a.live == 0 {
		a.Clear()
		return moved
	}

	numBlocks := (a.live + arenaBlockSize - 1) / arenaBlockSize
	newBlocks := make([][arenaBlockSize]T, numBlocks)
	newFilled := make([][arenaBlockSize]bool, numBlocks)

	writePos := 0
	for readIdx := 0; readIdx < a.nextIndex; readIdx++ {
		readBlockIdx := readIdx / arenaBlockSize
		readSlotIdx := readIdx % arenaBlockSize
		if !a.filled[readBlockIdx][readSlotIdx] {
			continue
		}

		newBlocks[writePos/arenaBlockSize][writePos%arenaBlockSize] = a.blocks[readBlockIdx][readSlotIdx]
		newFilled[writePos/arenaBlockSize][writePos%arenaBlockSize] = true
		if readIdx != writePos {
			moved.Put(NewEntity(a.kind, uint32(readIdx)), NewEntity(a.kind, uint32(writePos)))
		}
		writePos++
	}

	a.blocks = newBlocks
	a.filled = newFilled
	a.freeSlots = nil
	a.nextIndex = writePos
	return moved
}

// Stats reports the arena's occupancy.
func (a *Arena[T]) Stats() ArenaStats {
	return ArenaStats{
		Kind:      a.kind,
		Live:      a.live,
		Free:      len(a.freeSlots),
		Capacity:  len(a.blocks) * arenaBlockSize,
		HighWater: a.nextIndex,
	}
}

package ecs

// Entity encodes both the entity kind (upper 32 bits) and the arena slot (lower 32 bits).
// The zero Entity never refers to a live record; kinds start at 1.
type Entity uint64

// NewEntity creates an Entity from a kind tag and an arena slot index
func NewEntity(kind uint32, index uint32) Entity {
	return Entity(uint64(kind)<<32 | uint64(index))
}

// Kind extracts the kind tag from the entity handle
func (e Entity) Kind() uint32 {
	return uint32(e >> 32)
}

// Index extracts the arena slot from the entity handle
func (e Entity) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// IsZero reports whether the handle is the zero Entity
func (e Entity) IsZero() bool {
	return e == 0
}

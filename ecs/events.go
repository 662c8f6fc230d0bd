package ecs

// Events is a FIFO queue of typed events produced by systems and drained by the host loop.
type Events[E any] struct {
	items []E
}

// Push appends an event.
func (q *Events[E]) Push(evt E) {
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *Events[E]) Len() int {
	return len(q.items)
}

// Drain returns all queued events and empties the queue.
func (q *Events[E]) Drain() []E {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Clear drops queued events without returning them.
func (q *Events[E]) Clear() {
	q.items = nil
}

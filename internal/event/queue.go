// Package event provides the per-tick queues that carry one-shot signals
// between simulation phases. Queues are single-threaded: one producer phase
// pushes, a later phase drains, and the tick loop resets everything at tick
// end whether or not it was consumed.
package event

// Queue is an append-only buffer of events raised during one tick.
// Drain hands out each event once; All keeps the full tick record until
// Reset.
type Queue[T any] struct {
	events []T
	read   int // index of first undrained event
}

// Push appends an event.
func (q *Queue[T]) Push(e T) {
	q.events = append(q.events, e)
}

// Drain returns events pushed since the previous Drain, in push order.
// The returned slice aliases the queue and is valid until Reset.
func (q *Queue[T]) Drain() []T {
	if q.read >= len(q.events) {
		return nil
	}
	out := q.events[q.read:len(q.events):len(q.events)]
	q.read = len(q.events)
	return out
}

// Pending returns the number of undrained events.
func (q *Queue[T]) Pending() int {
	return len(q.events) - q.read
}

// All returns a copy of every event raised this tick.
func (q *Queue[T]) All() []T {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]T, len(q.events))
	copy(out, q.events)
	return out
}

// Len returns the number of events raised this tick.
func (q *Queue[T]) Len() int {
	return len(q.events)
}

// Reset drops every event. Backing storage is reused.
func (q *Queue[T]) Reset() {
	clear(q.events)
	q.events = q.events[:0]
	q.read = 0
}

package stream

import (
	"context"
	"sync"
)

// slot is a single-assignment placeholder that resolves to either a
// value and the following slot, or the end-of-sequence sentinel.
// Resolution is permanent and re-observable: any number of cursors may
// wait on the same slot and all see the identical outcome. The value,
// next, and end fields are written exactly once, before resolved is
// closed, and never mutated afterwards.
type slot[T any] struct {
	resolved chan struct{}
	value    T
	next     *slot[T]
	end      bool
}

func newSlot[T any]() *slot[T] {
	return &slot[T]{resolved: make(chan struct{})}
}

func (s *slot[T]) done() bool {
	select {
	case <-s.resolved:
		return true
	default:
		return false
	}
}

// Cursor is a position within a slot chain, advanced independently per
// consumer. Multiple cursors over the same chain observe the identical
// sequence of values in push order, regardless of their relative pace.
type Cursor[T any] struct {
	mu     sync.Mutex // one Next in flight per cursor
	tail   *slot[T]
	demand func()
}

// Next suspends until the cursor's current slot resolves, then returns
// the carried value and moves to the next slot. Once the chain has been
// stopped, Next reports end-of-sequence on every call, including for
// cursors that joined late.
func (c *Cursor[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.tail
	if c.demand != nil && !s.done() {
		c.demand()
	}
	select {
	case <-s.resolved:
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
	if s.end {
		// Stay parked on the end slot so later calls end again.
		return zero, false, nil
	}
	c.tail = s.next
	return s.value, true, nil
}

// Split returns a new cursor at the same position, independent from
// this cursor's subsequent advancement. If active is false the new
// cursor never inherits the demand hook: it is a pure observer and its
// advancement triggers no upstream side effect.
func (c *Cursor[T]) Split(active bool) *Cursor[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	var demand func()
	if active {
		demand = c.demand
	}
	return &Cursor[T]{tail: c.tail, demand: demand}
}

// Demand registers a hook invoked when Next finds the current slot
// unresolved, before waiting on it. Active cursors use it to trigger an
// upstream fetch; cursors split with active=false never carry it.
func (c *Cursor[T]) Demand(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.demand = fn
}

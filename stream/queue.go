package stream

import (
	"context"
	"sync"

	"github.com/kbukum/streamkit/errors"
)

// OverflowFunc is called synchronously with the queue and the item
// whenever a push finds the buffer full: before a blocking Push waits,
// and before PushNowait drops the item.
type OverflowFunc[T any] func(q *Queue[T], item T)

// Queue is a stream backed by a fixed-capacity FIFO buffer. Producers
// push into it, one logical owner calls Stop when no more input will
// arrive, and consumers drain it via Next. After Stop, items already
// buffered are still dequeued in order before end-of-sequence is raised.
type Queue[T any] struct {
	name     string
	items    chan T
	stop     chan struct{}
	stopOnce sync.Once
	overflow OverflowFunc[T]
}

// QueueOption configures a Queue.
type QueueOption[T any] func(*Queue[T])

// WithOverflow sets the overflow callback.
func WithOverflow[T any](fn OverflowFunc[T]) QueueOption[T] {
	return func(q *Queue[T]) { q.overflow = fn }
}

// WithName sets the queue name used in errors and logs.
func WithName[T any](name string) QueueOption[T] {
	return func(q *Queue[T]) { q.name = name }
}

// NewQueue creates a queue with the given buffer capacity.
func NewQueue[T any](capacity int, opts ...QueueOption[T]) *Queue[T] {
	if capacity <= 0 {
		capacity = 1
	}
	q := &Queue[T]{
		name:  "queue",
		items: make(chan T, capacity),
		stop:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Push enqueues each item in order, suspending while the buffer is
// full. The overflow callback, if set, runs before each blocking
// enqueue so callers can observe backpressure. Returns a closed-stream
// error if the queue has been stopped, including while waiting.
func (q *Queue[T]) Push(ctx context.Context, items ...T) error {
	for _, item := range items {
		if q.Stopped() {
			return errors.StreamClosed(q.name)
		}
		if q.overflow != nil && q.Full() {
			q.overflow(q, item)
		}
		// Re-check after the overflow callback: a queue stopped by now
		// must error rather than race the enqueue for a free slot.
		select {
		case <-q.stop:
			return errors.StreamClosed(q.name)
		default:
		}
		select {
		case q.items <- item:
		case <-q.stop:
			return errors.StreamClosed(q.name)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// PushNowait enqueues each item without blocking. When the buffer is
// full the overflow callback runs and the item is dropped.
func (q *Queue[T]) PushNowait(items ...T) error {
	for _, item := range items {
		if q.Stopped() {
			return errors.StreamClosed(q.name)
		}
		select {
		case q.items <- item:
		default:
			if q.overflow != nil {
				q.overflow(q, item)
			}
		}
	}
	return nil
}

// Stop marks no-more-input. Idempotent. Consumers drain the remaining
// buffer, then observe end-of-sequence.
func (q *Queue[T]) Stop() {
	q.stopOnce.Do(func() { close(q.stop) })
}

// Stopped reports whether Stop has been called.
func (q *Queue[T]) Stopped() bool {
	select {
	case <-q.stop:
		return true
	default:
		return false
	}
}

// Len returns the number of buffered items.
func (q *Queue[T]) Len() int { return len(q.items) }

// Cap returns the buffer capacity.
func (q *Queue[T]) Cap() int { return cap(q.items) }

// Full reports whether the buffer is at capacity.
func (q *Queue[T]) Full() bool { return len(q.items) == cap(q.items) }

// Name returns the queue name.
func (q *Queue[T]) Name() string { return q.name }

// Next races a dequeue against the stop signal: a buffered item wins if
// one is available; otherwise end-of-sequence is raised once the queue
// is stopped and empty.
func (q *Queue[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	// Prefer a buffered item over a concurrent stop.
	select {
	case val := <-q.items:
		return val, true, nil
	default:
	}
	select {
	case val := <-q.items:
		return val, true, nil
	case <-q.stop:
		select {
		case val := <-q.items:
			return val, true, nil
		default:
			return zero, false, nil
		}
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
}

package stream

import (
	"sync"

	"github.com/kbukum/streamkit/errors"
)

// Producer appends values to the head of a slot chain and can close it.
// The embedded Cursor is the producer's own consumer side; Split it to
// hand out additional independent views of the chain.
type Producer[T any] struct {
	*Cursor[T]

	mu   sync.Mutex // guards head
	head *slot[T]
}

// NewProducer creates an empty chain with a producer at its head.
func NewProducer[T any]() *Producer[T] {
	head := newSlot[T]()
	return &Producer[T]{
		Cursor: &Cursor[T]{tail: head},
		head:   head,
	}
}

// Push resolves the head slot with each item in order, advancing the
// head to a fresh unresolved slot. Every cursor over the chain sees the
// items in push order. Returns a closed-stream error once Stop has been
// called.
func (p *Producer[T]) Push(items ...T) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, item := range items {
		if p.head.done() {
			return errors.StreamClosed("producer")
		}
		next := newSlot[T]()
		p.head.value = item
		p.head.next = next
		close(p.head.resolved)
		p.head = next
	}
	return nil
}

// Stop resolves the head slot with the end-of-sequence sentinel.
// Idempotent; cursors suspended on the head observe the end promptly.
func (p *Producer[T]) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.head.done() {
		p.head.end = true
		close(p.head.resolved)
	}
}

// Stopped reports whether the producer has been stopped.
func (p *Producer[T]) Stopped() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.head.done()
}

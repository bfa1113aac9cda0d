package stream

import (
	"context"
	"sync"
)

// Shared wraps a stream so it can be pulled from multiple goroutines.
// Advancement is mutually exclusive, so each upstream item is delivered
// to exactly one caller.
type Shared[T any] struct {
	mu  sync.Mutex
	src Stream[T]
}

// Share returns a sharable view of s.
func Share[T any](s Stream[T]) *Shared[T] {
	return &Shared[T]{src: s}
}

// Next pulls the next upstream value on behalf of exactly one caller.
func (s *Shared[T]) Next(ctx context.Context) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Next(ctx)
}

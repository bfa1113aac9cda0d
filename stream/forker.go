package stream

import (
	"context"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/kbukum/streamkit/logger"
)

const defaultForkCapacity = 64

// Forker multiplexes one upstream stream into many independently-paced
// downstream forks. Every fork observes the identical sequence and
// relative order of values. Active forks drive upstream consumption;
// passive forks only observe, like listening in on a wire, and stall
// forever unless paired with an active sibling.
type Forker[T any] struct {
	upstream Stream[T]
	group    singleflight.Group
	forks    mapset.Set[*Fork[T]]
	capacity int
	overflow OverflowFunc[T]

	mu   sync.Mutex
	done bool // upstream exhausted
}

// Fork is an independent downstream view of a Forker's upstream,
// backed by its own bounded queue. The consumer owns the fork's
// lifetime and calls Close (or Forker.RemoveFork) when finished.
type Fork[T any] struct {
	*Queue[T]
	id     string
	forker *Forker[T]
	active bool
}

// ID returns the fork's unique identifier.
func (f *Fork[T]) ID() string { return f.id }

// Active reports whether the fork drives upstream consumption.
func (f *Fork[T]) Active() bool { return f.active }

// Close stops the fork's queue and removes it from the forker.
func (f *Fork[T]) Close() {
	f.forker.RemoveFork(f)
}

// Next returns the next fanned-out value. An active fork whose buffer
// is empty triggers a shared upstream fetch before dequeuing; a passive
// fork waits for an active sibling to feed it.
func (f *Fork[T]) Next(ctx context.Context) (T, bool, error) {
	if f.active {
		for f.Len() == 0 && !f.Stopped() {
			if err := f.forker.fetchNext(ctx); err != nil {
				var zero T
				return zero, false, err
			}
		}
	}
	return f.Queue.Next(ctx)
}

// ForkerOption configures a Forker.
type ForkerOption[T any] func(*Forker[T])

// WithForkCapacity sets the buffer capacity of forks created later.
func WithForkCapacity[T any](capacity int) ForkerOption[T] {
	return func(f *Forker[T]) { f.capacity = capacity }
}

// WithForkOverflow sets an overflow callback installed on every fork's
// queue, in addition to the built-in drop warning.
func WithForkOverflow[T any](fn OverflowFunc[T]) ForkerOption[T] {
	return func(f *Forker[T]) { f.overflow = fn }
}

// NewForker wraps upstream for forking.
func NewForker[T any](upstream Stream[T], opts ...ForkerOption[T]) *Forker[T] {
	f := &Forker[T]{
		upstream: upstream,
		forks:    mapset.NewSet[*Fork[T]](),
		capacity: defaultForkCapacity,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewFork creates and registers a fork. A fork created after the
// upstream has ended is born stopped.
func (f *Forker[T]) NewFork(active bool) *Fork[T] {
	fork := &Fork[T]{
		id:     uuid.NewString(),
		forker: f,
		active: active,
	}
	fork.Queue = NewQueue(f.capacity,
		WithName[T]("fork"),
		WithOverflow(func(q *Queue[T], item T) {
			if f.overflow != nil {
				f.overflow(q, item)
			}
			logger.Warn("fork buffer full, dropping item", logger.Fields(
				logger.FieldComponent, "forker",
				logger.FieldFork, fork.id,
				logger.FieldCapacity, q.Cap(),
			))
		}),
	)

	// Registration and the end-of-upstream check are atomic: a fork must
	// either be born stopped or be in the registry before the end path's
	// stop loop snapshots it.
	f.mu.Lock()
	if f.done {
		fork.Queue.Stop()
	}
	f.forks.Add(fork)
	f.mu.Unlock()
	return fork
}

// RemoveFork stops the fork and deregisters it, ending delivery.
func (f *Forker[T]) RemoveFork(fork *Fork[T]) {
	f.forks.Remove(fork)
	fork.Queue.Stop()
}

// Forks returns the number of registered forks.
func (f *Forker[T]) Forks() int { return f.forks.Cardinality() }

// fetchNext pulls one value from upstream and fans it out to every
// registered fork, active and passive alike. Concurrent callers share a
// single in-flight fetch: at most one upstream pull happens at a time,
// and waiters simply observe its completion instead of issuing their
// own. Forks stopped by their consumer are pruned during fan-out.
func (f *Forker[T]) fetchNext(ctx context.Context) error {
	_, err, _ := f.group.Do("fetch", func() (interface{}, error) {
		val, ok, err := f.upstream.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			f.mu.Lock()
			f.done = true
			for _, fork := range f.forks.ToSlice() {
				fork.Queue.Stop()
			}
			f.mu.Unlock()
			return nil, nil
		}
		for _, fork := range f.forks.ToSlice() {
			if fork.Stopped() {
				f.forks.Remove(fork)
				continue
			}
			_ = fork.PushNowait(val)
		}
		return nil, nil
	})
	return err
}

package stream

import (
	"context"
	"sync"
)

const joinBuffer = 16

// joinResult carries a value or error from a pump to the consumer.
type joinResult[T any] struct {
	val T
	ok  bool
	err error
}

// Joined is the output stream of Join or Merge. Stop abandons the merge
// and releases the pump goroutines.
type Joined[T any] struct {
	ch     chan joinResult[T]
	cancel context.CancelFunc
}

// Next returns the next value produced by any source, as soon as one is
// ready. No ordering is guaranteed across distinct sources; each
// source's own emissions keep that source's order.
func (j *Joined[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	select {
	case r, open := <-j.ch:
		if !open {
			return zero, false, nil
		}
		if r.err != nil {
			return zero, false, r.err
		}
		return r.val, true, nil
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
}

// Stop abandons the merge. Sources are left wherever they were.
func (j *Joined[T]) Stop() { j.cancel() }

// Join merges a dynamic collection of streams into one output stream.
// Sources are discovered by consuming the sources stream itself; each
// discovered stream is pumped concurrently, and the output ends only
// after the sources stream and every discovered stream have ended.
func Join[T any](ctx context.Context, sources Stream[Stream[T]]) *Joined[T] {
	jctx, cancel := context.WithCancel(ctx)
	ch := make(chan joinResult[T], joinBuffer)
	var wg sync.WaitGroup

	pump := func(s Stream[T]) {
		defer wg.Done()
		for {
			val, ok, err := s.Next(jctx)
			if err != nil {
				select {
				case ch <- joinResult[T]{err: err}:
				case <-jctx.Done():
				}
				return
			}
			if !ok {
				return
			}
			select {
			case ch <- joinResult[T]{val: val, ok: true}:
			case <-jctx.Done():
				return
			}
		}
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			s, ok, err := sources.Next(jctx)
			if err != nil {
				select {
				case ch <- joinResult[T]{err: err}:
				case <-jctx.Done():
				}
				return
			}
			if !ok {
				return
			}
			wg.Add(1)
			go pump(s)
		}
	}()

	go func() {
		wg.Wait()
		cancel()
		close(ch)
	}()

	return &Joined[T]{ch: ch, cancel: cancel}
}

// Merge joins a fixed set of streams into one output stream.
func Merge[T any](ctx context.Context, streams ...Stream[T]) *Joined[T] {
	return Join(ctx, FromSlice(streams))
}

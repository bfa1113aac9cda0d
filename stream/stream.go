package stream

import "context"

// Stream provides pull-based sequential access to a sequence of values
// produced over time. Structurally compatible with pipeline iterators.
type Stream[T any] interface {
	// Next returns the next value, suspending until one is known.
	// Returns (zero, false, nil) when the sequence has ended; end of
	// sequence is a terminal signal, not an error. Returns ctx.Err()
	// if the context is cancelled while waiting.
	Next(ctx context.Context) (T, bool, error)
}

// Func adapts a function to the Stream interface.
type Func[T any] func(ctx context.Context) (T, bool, error)

// Next calls f.
func (f Func[T]) Next(ctx context.Context) (T, bool, error) { return f(ctx) }

// Collect pulls all values from s and returns them as a slice.
func Collect[T any](ctx context.Context, s Stream[T]) ([]T, error) {
	var out []T
	for {
		val, ok, err := s.Next(ctx)
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, val)
	}
}

// Drain pulls all values from s and sends each to sink.
func Drain[T any](ctx context.Context, s Stream[T], sink func(context.Context, T) error) error {
	for {
		val, ok, err := s.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := sink(ctx, val); err != nil {
			return err
		}
	}
}

// FromSlice creates a stream over a slice of values.
// The returned stream is not safe for concurrent use; wrap it with
// Share to pull from multiple goroutines.
func FromSlice[T any](items []T) Stream[T] {
	return &sliceStream[T]{items: items}
}

type sliceStream[T any] struct {
	items []T
	index int
}

func (s *sliceStream[T]) Next(_ context.Context) (T, bool, error) {
	if s.index >= len(s.items) {
		var zero T
		return zero, false, nil
	}
	val := s.items[s.index]
	s.index++
	return val, true, nil
}

// FromChan creates a stream that reads from ch until it is closed.
func FromChan[T any](ch <-chan T) Stream[T] {
	return Func[T](func(ctx context.Context) (T, bool, error) {
		select {
		case val, open := <-ch:
			if !open {
				var zero T
				return zero, false, nil
			}
			return val, true, nil
		case <-ctx.Done():
			var zero T
			return zero, false, ctx.Err()
		}
	})
}

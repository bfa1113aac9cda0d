package stream

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Pair holds one value from each of two zipped streams.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip2 advances both streams concurrently in lockstep and emits one
// pair per round. It ends as soon as either input ends; the other is
// left wherever it was.
func Zip2[A, B any](a Stream[A], b Stream[B]) Stream[Pair[A, B]] {
	return &zip2Stream[A, B]{a: a, b: b}
}

type zip2Stream[A, B any] struct {
	a    Stream[A]
	b    Stream[B]
	done bool
}

func (z *zip2Stream[A, B]) Next(ctx context.Context) (Pair[A, B], bool, error) {
	var zero Pair[A, B]
	if z.done {
		return zero, false, nil
	}

	var av A
	var bv B
	var aEnd, bEnd bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, ok, err := z.a.Next(gctx)
		if err != nil {
			return err
		}
		if !ok {
			aEnd = true
			return nil
		}
		av = v
		return nil
	})
	g.Go(func() error {
		v, ok, err := z.b.Next(gctx)
		if err != nil {
			return err
		}
		if !ok {
			bEnd = true
			return nil
		}
		bv = v
		return nil
	})
	if err := g.Wait(); err != nil {
		return zero, false, err
	}
	if aEnd || bEnd {
		z.done = true
		return zero, false, nil
	}
	return Pair[A, B]{First: av, Second: bv}, true, nil
}

// Zip advances all streams concurrently in lockstep and emits one
// combined slice per round, indexed like the inputs. It ends as soon as
// any input ends. Zip of no streams ends immediately.
func Zip[T any](streams ...Stream[T]) Stream[[]T] {
	return &zipStream[T]{srcs: streams}
}

type zipStream[T any] struct {
	srcs []Stream[T]
	done bool
}

func (z *zipStream[T]) Next(ctx context.Context) ([]T, bool, error) {
	if z.done || len(z.srcs) == 0 {
		return nil, false, nil
	}

	vals := make([]T, len(z.srcs))
	var ended atomic.Bool
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range z.srcs {
		g.Go(func() error {
			v, ok, err := s.Next(gctx)
			if err != nil {
				return err
			}
			if !ok {
				ended.Store(true)
				return nil
			}
			vals[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, false, err
	}
	if ended.Load() {
		z.done = true
		return nil, false, nil
	}
	return vals, true, nil
}

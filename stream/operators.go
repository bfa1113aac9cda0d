package stream

import (
	"context"

	"github.com/kbukum/streamkit/logger"
)

// MapFunc transforms one input value into one output value.
type MapFunc[I, O any] func(ctx context.Context, in I) (O, error)

// MapFilterFunc transforms one input value into zero or more output
// values. Returning an empty slice filters the input out; returning
// several expands it.
type MapFilterFunc[I, O any] func(ctx context.Context, in I) ([]O, error)

// Map applies fn to each value of s. An error from fn is logged and the
// offending item dropped; the stream is not terminated by a mapping
// failure. Callers needing strict failure handling wrap their own fn.
func Map[I, O any](s Stream[I], fn MapFunc[I, O]) Stream[O] {
	return &mapStream[I, O]{source: s, fn: fn}
}

type mapStream[I, O any] struct {
	source Stream[I]
	fn     MapFunc[I, O]
}

func (m *mapStream[I, O]) Next(ctx context.Context) (O, bool, error) {
	var zero O
	for {
		in, ok, err := m.source.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}
		out, err := m.fn(ctx, in)
		if err != nil {
			logger.Error("map function failed, dropping item", logger.Fields(
				logger.FieldComponent, "map",
				logger.FieldItem, in,
				logger.FieldError, err.Error(),
			))
			continue
		}
		return out, true, nil
	}
}

// MapFilter applies fn to each value of s and re-emits the returned
// values individually, with the same per-item error isolation as Map.
func MapFilter[I, O any](s Stream[I], fn MapFilterFunc[I, O]) Stream[O] {
	return &mapFilterStream[I, O]{source: s, fn: fn}
}

type mapFilterStream[I, O any] struct {
	source  Stream[I]
	fn      MapFilterFunc[I, O]
	pending []O
}

func (m *mapFilterStream[I, O]) Next(ctx context.Context) (O, bool, error) {
	var zero O
	for {
		if len(m.pending) > 0 {
			out := m.pending[0]
			m.pending = m.pending[1:]
			return out, true, nil
		}
		in, ok, err := m.source.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}
		outs, err := m.fn(ctx, in)
		if err != nil {
			logger.Error("map filter function failed, dropping item", logger.Fields(
				logger.FieldComponent, "map_filter",
				logger.FieldItem, in,
				logger.FieldError, err.Error(),
			))
			continue
		}
		m.pending = outs
	}
}

// Flatten re-emits the elements of each slice produced by s
// individually. Iterating a slice cannot fail, so unlike Map and
// MapFilter there is no per-item error path here.
func Flatten[T any](s Stream[[]T]) Stream[T] {
	return &flattenStream[T]{source: s}
}

type flattenStream[T any] struct {
	source  Stream[[]T]
	pending []T
}

func (f *flattenStream[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	for {
		if len(f.pending) > 0 {
			out := f.pending[0]
			f.pending = f.pending[1:]
			return out, true, nil
		}
		items, ok, err := f.source.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}
		f.pending = items
	}
}

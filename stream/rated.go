package stream

import (
	"context"

	"github.com/kbukum/streamkit/errors"
)

// Rated gates s by zipping it against a permit stream, emitting an item
// only when a permit is available. The permit stream yields
// monotonically increasing counters (cumulative totals); each increment
// releases one item downstream. The ratelimit package produces such a
// stream from a token-bucket limiter.
func Rated[T any](s Stream[T], permits Stream[int]) Stream[T] {
	last := 0
	units := MapFilter(permits, func(_ context.Context, total int) ([]struct{}, error) {
		if total < last {
			return nil, errors.InvalidInput("permits", "counter decreased")
		}
		delta := total - last
		last = total
		return make([]struct{}, delta), nil
	})
	pairs := Zip2[T, struct{}](s, units)
	return Map(pairs, func(_ context.Context, p Pair[T, struct{}]) (T, error) {
		return p.First, nil
	})
}

package stream

import "context"

// ParallelMap applies fn to the values of s with the given number of
// concurrent workers, joining the results into one output stream.
// Each worker runs its own mapping pipeline over a shared view of s,
// so every upstream item is consumed by exactly one worker and idle
// workers naturally pick up the next item sooner. Output order is not
// preserved. Mapping failures follow Map's per-item isolation.
func ParallelMap[I, O any](ctx context.Context, s Stream[I], workers int, fn MapFunc[I, O]) *Joined[O] {
	if workers <= 0 {
		workers = 1
	}
	shared := Share(s)
	pipes := make([]Stream[O], workers)
	for i := range pipes {
		pipes[i] = Map[I, O](shared, fn)
	}
	return Merge(ctx, pipes...)
}

// Package stream provides composable asynchronous stream primitives:
// pull-based sequences that independent producers and consumers use to
// exchange values over time with explicit backpressure, orderly
// termination, and fan-out/fan-in composition.
//
// The Stream interface is the shared contract: produce the next value
// or signal end-of-sequence, suspending the caller until one is known.
// End of sequence is reported as (zero, false, nil) — a terminal
// signal, never an error.
//
// # Primitives
//
//   - Producer: an immutable, replayable chain of single-assignment
//     slots. Push appends, Stop closes, and any number of cursors
//     obtained via Split observe the identical sequence in push order.
//   - Queue: a bounded FIFO stream with blocking Push (backpressure),
//     PushNowait (drop-on-full with an overflow hook), and a one-shot
//     Stop that drains buffered items before ending.
//   - Forker: fans one upstream out to many forks. Active forks drive
//     a single-flight upstream fetch; passive forks only observe.
//   - Join / Merge: fan a dynamic or fixed set of streams into one,
//     preserving order within each source but not across sources.
//
// # Combinators
//
//   - Map / MapFilter: per-item transformation with per-item error
//     isolation — a failing mapping function is logged and its item
//     dropped, the stream keeps going.
//   - Flatten: re-emit slice elements individually.
//   - ParallelMap: worker fan-out over a shared cursor, fan-in via Join.
//   - Zip / Zip2: lockstep advancement, ending with the shortest input.
//   - Rated: gate a stream with permits from a rate limiter.
//
// # Usage
//
//	q := stream.NewQueue[int](8)
//	go func() {
//	    defer q.Stop()
//	    for i := 0; i < 100; i++ {
//	        _ = q.Push(ctx, i)
//	    }
//	}()
//	doubled := stream.Map(q, func(_ context.Context, n int) (int, error) {
//	    return n * 2, nil
//	})
//	results, _ := stream.Collect(ctx, doubled)
package stream

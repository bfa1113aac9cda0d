package stream

import (
	"context"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/kbukum/streamkit/errors"
)

func TestParallelMapEachItemExactlyOnce(t *testing.T) {
	ctx := context.Background()
	n := 100
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}

	out := ParallelMap(ctx, FromSlice(items), 4, func(_ context.Context, v int) (int, error) {
		return v * 2, nil
	})
	defer out.Stop()

	got, err := Collect[int](ctx, out)
	if err != nil {
		t.Fatal(err)
	}
	sort.Ints(got)
	if len(got) != n {
		t.Fatalf("got %d results, want %d", len(got), n)
	}
	for i, v := range got {
		if v != i*2 {
			t.Fatalf("result %d = %d, want %d", i, v, i*2)
		}
	}
}

func TestParallelMapUsesMultipleWorkers(t *testing.T) {
	ctx := context.Background()
	items := make([]int, 50)

	var inFlight, peak int32
	out := ParallelMap(ctx, FromSlice(items), 4, func(_ context.Context, v int) (int, error) {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		defer atomic.AddInt32(&inFlight, -1)
		return v, nil
	})
	defer out.Stop()

	if _, err := Collect[int](ctx, out); err != nil {
		t.Fatal(err)
	}
	// Concurrency is scheduler-dependent, but must never exceed workers.
	if p := atomic.LoadInt32(&peak); p > 4 {
		t.Errorf("observed %d concurrent calls, limit is 4", p)
	}
}

func TestParallelMapIsolatesItemErrors(t *testing.T) {
	ctx := context.Background()
	out := ParallelMap(ctx, FromSlice([]int{1, 2, 3, 4}), 2, func(_ context.Context, v int) (int, error) {
		if v%2 == 1 {
			return 0, errors.InvalidInput("value", "odd")
		}
		return v, nil
	})
	defer out.Stop()

	got, err := Collect[int](ctx, out)
	if err != nil {
		t.Fatal(err)
	}
	sort.Ints(got)
	if !intSliceEqual(got, []int{2, 4}) {
		t.Errorf("got %v, want [2 4]", got)
	}
}

func TestParallelMapZeroWorkersDefaultsToOne(t *testing.T) {
	ctx := context.Background()
	out := ParallelMap(ctx, FromSlice([]int{1, 2, 3}), 0, func(_ context.Context, v int) (int, error) {
		return v + 1, nil
	})
	defer out.Stop()

	got, err := Collect[int](ctx, out)
	if err != nil {
		t.Fatal(err)
	}
	sort.Ints(got)
	if !intSliceEqual(got, []int{2, 3, 4}) {
		t.Errorf("got %v, want [2 3 4]", got)
	}
}

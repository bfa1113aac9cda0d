package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/stream"
)

func TestAllowWithinBurst(t *testing.T) {
	l := New(Config{Name: "test", Rate: 1, Burst: 2})
	if !l.Allow() {
		t.Error("first permit within burst should be granted")
	}
	if !l.Allow() {
		t.Error("second permit within burst should be granted")
	}
	if l.Allow() {
		t.Error("third immediate permit should be denied at 1/s")
	}
}

func TestAllowCallsOnLimit(t *testing.T) {
	limited := 0
	var limitedName string
	l := New(Config{
		Name:  "ingest",
		Rate:  1,
		Burst: 1,
		OnLimit: func(name string) {
			limited++
			limitedName = name
		},
	})
	l.Allow()
	l.Allow()
	if limited != 1 {
		t.Errorf("OnLimit called %d times, want 1", limited)
	}
	if limitedName != "ingest" {
		t.Errorf("OnLimit name = %q, want ingest", limitedName)
	}
}

func TestWaitBlocksUntilPermit(t *testing.T) {
	l := New(Config{Name: "test", Rate: 100, Burst: 1})
	ctx := context.Background()
	if err := l.Wait(ctx); err != nil {
		t.Fatal(err)
	}

	// The bucket is empty; the next permit arrives within ~10ms.
	start := time.Now()
	if err := l.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("wait took %v, want about 10ms", elapsed)
	}
}

func TestWaitContextCancelled(t *testing.T) {
	l := New(Config{Name: "test", Rate: 0.001, Burst: 1})
	if err := l.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx); err == nil {
		t.Error("expected context error while waiting for a slow permit")
	}
}

func TestExecuteRateLimited(t *testing.T) {
	l := New(Config{Name: "exec", Rate: 1, Burst: 1})

	ran := false
	if err := l.Execute(func() error { ran = true; return nil }); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Error("fn did not run")
	}

	err := l.Execute(func() error { return nil })
	if err == nil || errors.CodeOf(err) != errors.ErrCodeRateLimited {
		t.Fatalf("expected RATE_LIMITED, got %v", err)
	}
}

func TestDefaultsApplied(t *testing.T) {
	l := New(Config{Name: "d"})
	if l.Rate() != 10.0 {
		t.Errorf("rate = %g, want 10", l.Rate())
	}
	if l.Burst() != 10 {
		t.Errorf("burst = %d, want 10", l.Burst())
	}
	if l.Name() != "d" {
		t.Errorf("name = %q, want d", l.Name())
	}
}

func TestPermitsStrictlyIncreasing(t *testing.T) {
	ctx := context.Background()
	permits := Permits(New(Config{Name: "p", Rate: 10000, Burst: 100}))

	prev := 0
	for i := 0; i < 10; i++ {
		v, ok, err := permits.Next(ctx)
		if err != nil || !ok {
			t.Fatalf("permit %d: (ok=%v, err=%v)", i, ok, err)
		}
		if v != prev+1 {
			t.Fatalf("permit %d = %d, want %d", i, v, prev+1)
		}
		prev = v
	}
}

func TestRatedWithPermits(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	items := []int{1, 2, 3, 4, 5}
	gated := stream.Rated(stream.FromSlice(items), Permits(New(Config{
		Name:  "gate",
		Rate:  10000,
		Burst: 1,
	})))

	got, err := stream.Collect(ctx, gated)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(items) {
		t.Fatalf("got %v, want all of %v", got, items)
	}
	for i, v := range got {
		if v != items[i] {
			t.Errorf("item %d = %d, want %d", i, v, items[i])
		}
	}
}

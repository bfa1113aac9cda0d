package ratelimit

import (
	"context"

	"github.com/kbukum/streamkit/stream"
)

// Permits returns a stream of monotonically increasing permit counters
// backed by the limiter: each value is the cumulative number of permits
// granted so far, produced as the token bucket releases them. Feed it
// to stream.Rated to gate a stream at the limiter's pace.
func Permits(l *Limiter) stream.Stream[int] {
	count := 0
	return stream.Func[int](func(ctx context.Context) (int, bool, error) {
		if err := l.Wait(ctx); err != nil {
			return 0, false, err
		}
		count++
		return count, true, nil
	})
}

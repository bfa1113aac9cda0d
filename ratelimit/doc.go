// Package ratelimit provides a token bucket rate limiter and a
// permit-counter stream for rate-gating pipelines.
//
// The limiter wraps golang.org/x/time/rate behind a small config
// surface. Permits adapts a limiter into the monotonically increasing
// counter stream that stream.Rated consumes:
//
//	l := ratelimit.New(ratelimit.Config{Name: "ingest", Rate: 100})
//	gated := stream.Rated(source, ratelimit.Permits(l))
package ratelimit

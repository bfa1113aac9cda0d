package ratelimit

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/kbukum/streamkit/errors"
)

// Config configures a rate limiter.
type Config struct {
	// Name identifies this limiter for errors and logging.
	Name string
	// Rate is the number of permits granted per second.
	Rate float64
	// Burst is the maximum burst size.
	Burst int
	// OnLimit is called when a non-blocking request is rate limited.
	OnLimit func(name string)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(name string) Config {
	return Config{
		Name:  name,
		Rate:  10.0,
		Burst: 20,
	}
}

// Limiter is a token bucket rate limiter. It controls how fast permits
// are granted to prevent overwhelming downstream consumers.
type Limiter struct {
	config  Config
	limiter *rate.Limiter
}

// New creates a rate limiter.
func New(config Config) *Limiter {
	if config.Rate <= 0 {
		config.Rate = 10.0
	}
	if config.Burst <= 0 {
		config.Burst = int(config.Rate)
	}
	return &Limiter{
		config:  config,
		limiter: rate.NewLimiter(rate.Limit(config.Rate), config.Burst),
	}
}

// Allow reports whether a permit is available, without blocking.
func (l *Limiter) Allow() bool {
	if l.limiter.Allow() {
		return true
	}
	if l.config.OnLimit != nil {
		l.config.OnLimit(l.config.Name)
	}
	return false
}

// Wait blocks until a permit is granted or the context is cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Execute runs fn if a permit is available.
func (l *Limiter) Execute(fn func() error) error {
	if !l.Allow() {
		return errors.RateLimited(l.config.Name)
	}
	return fn()
}

// Rate returns the permit rate per second.
func (l *Limiter) Rate() float64 { return l.config.Rate }

// Burst returns the burst size.
func (l *Limiter) Burst() int { return l.config.Burst }

// Name returns the limiter name.
func (l *Limiter) Name() string { return l.config.Name }

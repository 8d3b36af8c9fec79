// Package retry runs network calls with exponential backoff.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// Config configures retry behavior for transient failures.
type Config struct {
	// MaxAttempts counts every call, the first one included.
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64

	// Jitter is the +/- fraction applied to each wait (0.2 = ±20%).
	Jitter float64

	// Retryable classifies errors. Nil treats every error as transient.
	Retryable func(err error) bool

	// WaitFor may override the computed wait for a specific error,
	// e.g. a server-provided Retry-After. MaxWait still caps it.
	WaitFor func(err error) (time.Duration, bool)
}

// DefaultConfig returns one call plus up to 3 retries after waits of 1s,
// 2s and 4s, with no jitter.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 4,
		InitialWait: 1 * time.Second,
		MaxWait:     4 * time.Second,
		Multiplier:  2.0,
	}
}

// sleep is swapped out in tests.
var sleep = func(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Do calls fn until it succeeds, returns a non-retryable error, the
// attempts are exhausted, or ctx is done. It returns the last error.
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	_, err := DoValue(ctx, cfg, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// DoValue is Do for calls that produce a value.
func DoValue[T any](ctx context.Context, cfg Config, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := range attempts {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || !NotPermanent(err) {
			return zero, err
		}
		if cfg.Retryable != nil && !cfg.Retryable(err) {
			return zero, err
		}
		if attempt == attempts-1 {
			break
		}

		if err := sleep(ctx, cfg.Backoff(attempt, err)); err != nil {
			return zero, err
		}
	}
	return zero, lastErr
}

// Backoff returns the wait before the attempt following attempt (0-based).
func (c Config) Backoff(attempt int, err error) time.Duration {
	if c.WaitFor != nil {
		if d, ok := c.WaitFor(err); ok {
			if c.MaxWait > 0 && d > c.MaxWait {
				d = c.MaxWait
			}
			return max(d, 0)
		}
	}

	mult := c.Multiplier
	if mult <= 0 {
		mult = 1
	}
	wait := float64(c.InitialWait) * math.Pow(mult, float64(attempt))
	if c.MaxWait > 0 && wait > float64(c.MaxWait) {
		wait = float64(c.MaxWait)
	}
	if c.Jitter > 0 {
		wait += wait * c.Jitter * (2*rand.Float64() - 1)
	}
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}

// Permanent marks an error as not worth retrying regardless of the
// configured classifier.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string { return p.Err.Error() }
func (p *Permanent) Unwrap() error { return p.Err }

// NotPermanent is a Retryable classifier that rejects *Permanent errors.
func NotPermanent(err error) bool {
	var p *Permanent
	return !errors.As(err, &p)
}

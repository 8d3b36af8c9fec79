package llm

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/moneypath/internal/logger"
	"github.com/abhisek/moneypath/internal/retry"
)

// RetryProvider retries transient failures with exponential backoff.
// Rate limits wait for the provider's Retry-After when it sent one; an
// invalid structured reply is retried once.
type RetryProvider struct {
	inner Provider
	cfg   retry.Config
	log   *logger.Logger
}

// WithRetry wraps p. A nil logger discards output.
func WithRetry(p Provider, cfg retry.Config, log *logger.Logger) *RetryProvider {
	if log == nil {
		log = logger.Nop()
	}
	return &RetryProvider{inner: p, cfg: cfg, log: log}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	invalidSeen := false
	cfg := r.cfg
	cfg.Retryable = func(err error) bool {
		var inv *ErrInvalidResponse
		if errors.As(err, &inv) {
			if invalidSeen {
				return false
			}
			invalidSeen = true
			return true
		}
		return transient(err)
	}
	cfg.WaitFor = func(err error) (time.Duration, bool) {
		var rl *ErrRateLimit
		if errors.As(err, &rl) && rl.RetryAfter > 0 {
			return rl.RetryAfter, true
		}
		return 0, false
	}

	attempt := 0
	return retry.DoValue(ctx, cfg, func(ctx context.Context) (*Response, error) {
		attempt++
		resp, err := r.inner.Generate(ctx, req)
		if err != nil {
			r.log.Debug("llm attempt failed", "model", r.inner.ModelID(), "attempt", attempt, "error", err)
		}
		return resp, err
	})
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

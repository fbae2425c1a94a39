package retry

import (
	"context"
	"time"

	errs "github.com/zukafarm/reward-engine/internal/domain/error"
	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
)

// Policy bounds the retry behavior for transient store failures
type Policy struct {
	MaxAttempts  int
	Interval     time.Duration
	MaxInterval  time.Duration
	JitterFactor float64 // Factor to add randomness to retry intervals (0.0-1.0)
}

// DefaultPolicy returns the default retry policy
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:  3,
		Interval:     100 * time.Millisecond,
		MaxInterval:  2 * time.Second,
		JitterFactor: 0.2, // 20% jitter to avoid thundering herd
	}
}

// Do runs operation, retrying with bounded exponential backoff while it fails
// with ErrTransient. Deterministic outcomes (quota, duplicates, validation)
// are returned immediately: retrying would not change them. After the budget
// is exhausted the last transient error is surfaced to the caller.
func Do(ctx context.Context, policy Policy, logger coreport.Logger, operation func() error) error {
	var err error
	var attempt int

	for attempt = 0; attempt < policy.MaxAttempts; attempt++ {
		err = operation()
		if err == nil {
			return nil
		}

		if !errs.IsTransientError(err) {
			return err
		}

		if attempt == policy.MaxAttempts-1 {
			break
		}

		backoff := backoffWithJitter(attempt, policy)
		logger.Warn("Transient store error, retrying operation", map[string]any{
			"attempt":      attempt + 1,
			"max_attempts": policy.MaxAttempts,
			"error":        err.Error(),
			"retry_after":  backoff.String(),
		})

		select {
		case <-time.After(backoff):
			// Continue with next retry
		case <-ctx.Done():
			logger.Warn("Retry canceled by context", map[string]any{
				"attempts": attempt + 1,
				"error":    ctx.Err().Error(),
			})
			return ctx.Err()
		}
	}

	logger.Error("All retry attempts failed", map[string]any{
		"attempts": attempt + 1,
		"error":    err.Error(),
	})
	return err
}

// backoffWithJitter computes the backoff duration with exponential increase and jitter
func backoffWithJitter(attempt int, policy Policy) time.Duration {
	backoff := policy.Interval * (1 << uint(attempt))

	if backoff > policy.MaxInterval {
		backoff = policy.MaxInterval
	}

	if policy.JitterFactor > 0 {
		jitter := time.Duration(float64(backoff) * policy.JitterFactor * (float64(time.Now().UnixNano()%100) / 100.0))
		backoff = backoff + jitter
	}

	return backoff
}

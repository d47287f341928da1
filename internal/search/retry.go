package search

import (
	"context"
	"fmt"
	"time"
)

// RetryPolicy is an explicit backoff schedule applied as a combinator around
// an operation. The delay starts at InitialDelay, multiplies by Multiplier
// after each attempt and never exceeds MaxDelay; the whole loop stops once
// Deadline has elapsed. Retryable decides which errors are worth another
// attempt.
type RetryPolicy struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	Deadline     time.Duration
	Retryable    func(error) bool
}

// DefaultRetryPolicy mirrors the embedding provider policy: 1s initial delay
// doubling up to 60s per wait, 300s overall deadline, transient errors only.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		InitialDelay: 1 * time.Second,
		MaxDelay:     60 * time.Second,
		Multiplier:   2.0,
		Deadline:     300 * time.Second,
		Retryable:    IsRetryable,
	}
}

// Do runs op, retrying per the policy. It returns nil on the first success,
// the error unchanged when Retryable rejects it, ctx.Err() when the caller
// cancels mid-backoff, and the last error wrapped once the deadline expires.
func (p RetryPolicy) Do(ctx context.Context, op func(context.Context) error) error {
	if p.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Deadline)
		defer cancel()
	}

	delay := p.InitialDelay
	for {
		err := op(ctx)
		if err == nil {
			return nil
		}
		if p.Retryable == nil || !p.Retryable(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("retry deadline exceeded: %w", err)
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * p.Multiplier)
		if p.MaxDelay > 0 && delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}
}

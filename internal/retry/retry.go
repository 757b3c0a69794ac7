// Package retry runs an operation a bounded number of times with a
// caller-supplied delay between attempts.
package retry

import (
	"context"
	"time"
)

// DelayFunc maps a completed attempt number (1-based) to the wait
// before the next attempt.
type DelayFunc func(attempt int) time.Duration

// Linear returns a delay function where attempt n waits n × base.
func Linear(base time.Duration) DelayFunc {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * base
	}
}

// Options controls a retry loop.
type Options struct {
	// total attempts, including the first; values below 1 mean one
	Attempts int
	// wait between attempts; nil means no wait
	Delay DelayFunc
	// decides whether an error is worth another attempt; nil retries all
	Retryable func(error) bool
	// called before each re-attempt with the upcoming attempt number
	OnRetry func(attempt int)
}

// Do runs op until it succeeds, the attempt budget is spent, a
// non-retryable error occurs, or ctx is canceled. The returned error is
// the last one observed.
func Do(ctx context.Context, opts Options, op func(ctx context.Context) error) error {
	attempts := opts.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 && opts.OnRetry != nil {
			opts.OnRetry(attempt)
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}

		if ctx.Err() != nil {
			return lastErr
		}

		if opts.Retryable != nil && !opts.Retryable(lastErr) {
			return lastErr
		}

		if attempt == attempts {
			break
		}

		var delay time.Duration
		if opts.Delay != nil {
			delay = opts.Delay(attempt)
		}

		if delay > 0 {
			select {
			case <-ctx.Done():
				return lastErr
			case <-time.After(delay):
			}
		}
	}

	return lastErr
}

package llm

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// RetryPolicy decides how many times a failed completion is reattempted and
// how long to pause between attempts.
type RetryPolicy struct {
	MaxRetries int           // reattempts after the initial call
	BaseDelay  time.Duration // pause before the first retry
	MaxDelay   time.Duration // ceiling for computed and Retry-After pauses
	Multiplier float64       // backoff growth per attempt
	Jitter     bool          // randomize pauses to spread concurrent retries
	OnRetry    func(err error, attempt int, delay time.Duration)
}

// DefaultRetryPolicy suits an interactive loop: a couple of quick retries,
// never waiting longer than a user would.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 2,
		BaseDelay:  time.Second,
		MaxDelay:   60 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Delay returns the backoff pause before retry attempt n (0-indexed).
func (p RetryPolicy) Delay(attempt int) time.Duration {
	d := float64(p.BaseDelay) * math.Pow(p.Multiplier, float64(attempt))
	if ceil := float64(p.MaxDelay); d > ceil {
		d = ceil
	}
	if p.Jitter {
		d *= 0.5 + rand.Float64()
	}
	return time.Duration(d)
}

// pause picks the wait before the next attempt. A provider Retry-After wins
// over the computed backoff; one longer than MaxDelay means the retry is not
// worth waiting for and reports false.
func (p RetryPolicy) pause(attempt int, err error) (time.Duration, bool) {
	if rl, ok := err.(*RateLimitError); ok && rl.RetryAfter != nil {
		after := time.Duration(*rl.RetryAfter * float64(time.Second))
		if after > p.MaxDelay {
			return 0, false
		}
		return after, true
	}
	return p.Delay(attempt), true
}

// Retry runs fn until it succeeds, the error is not retryable, or the policy
// is exhausted. Cancellation while waiting surfaces as an AbortError.
func Retry[T any](ctx context.Context, policy RetryPolicy, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		if attempt >= policy.MaxRetries || !IsRetryable(err) {
			return zero, err
		}

		wait, ok := policy.pause(attempt, err)
		if !ok {
			return zero, err
		}
		if policy.OnRetry != nil {
			policy.OnRetry(err, attempt+1, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, &AbortError{SDKError: SDKError{
				Message: "request cancelled while waiting to retry",
				Cause:   ctx.Err(),
			}}
		case <-timer.C:
		}
	}
}

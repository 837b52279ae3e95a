package request

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// NewRateLimit creates a new RateLimit based of time interval and how many
// actions allowed and breaks it down to an actions-per-second basis -- Burst
// rate is kept as one as this is not supported for out-bound requests.
func NewRateLimit(interval time.Duration, actions int) *rate.Limiter {
	if actions <= 0 || interval <= 0 {
		// Returns an un-restricted rate limiter
		return rate.NewLimiter(rate.Inf, 1)
	}

	i := 1 / interval.Seconds()
	rps := i * float64(actions)
	return rate.NewLimiter(rate.Limit(rps), 1)
}

// WithLimiter applies a caller owned rate limiter to every request. No
// limiter is applied by default.
func WithLimiter(l *rate.Limiter) RequesterOption {
	return func(r *Requester) {
		r.limiter = l
	}
}

// waitForLimiter blocks until the limiter allows the request, or fails
// immediately when the context disallows delays
func (r *Requester) waitForLimiter(ctx context.Context) error {
	if r.limiter == nil {
		return nil
	}

	if hasDelayNotAllowed(ctx) {
		reservation := r.limiter.Reserve()
		if delay := reservation.Delay(); delay > 0 {
			reservation.Cancel()
			return fmt.Errorf("%s %w: rate limit requires %s wait", r.name, ErrDelayNotAllowed, delay)
		}
		return nil
	}

	return r.limiter.Wait(ctx)
}

package binance

import (
	"math"
	"time"

	"github.com/thrasher-corp/binancespot/exchanges/request"
	"golang.org/x/time/rate"
)

// Window returns the length of the rate limit window
func (r RateLimit) Window() time.Duration {
	return time.Duration(r.IntervalNum) * r.Interval.Duration()
}

// Limiter converts the rate limit into a limiter allowing Limit actions per
// window. Limits with an unknown interval yield an unrestricted limiter.
// Request weight limits count weight, not requests, so callers spending more
// than one weight per request should reserve accordingly.
func (r RateLimit) Limiter() *rate.Limiter {
	return request.NewRateLimit(r.Window(), int(min(r.Limit, math.MaxInt32)))
}

// Limiter returns a limiter for the first limit of the given type, nil when
// the exchange reports none
func (e *ExchangeInfo) Limiter(t RateLimiter) *rate.Limiter {
	for _, rl := range e.RateLimits {
		if rl.RateLimitType == t {
			return rl.Limiter()
		}
	}
	return nil
}

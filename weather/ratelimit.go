package weather

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimiter paces requests towards the weather provider.
//
// Example usage:
//
//	limiter := weather.NewRateLimiter(1.0, 5)
//	if err := limiter.Wait(ctx); err != nil {
//	    return err
//	}
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter allowing rps requests per second with the given burst.
// rps may be fractional for less than one request per second; rps <= 0 disables pacing.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &RateLimiter{limiter: rate.NewLimiter(limit, burst)}
}

// Wait blocks until a request may be sent or ctx is done.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if err := rl.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return nil
}

// Limit returns the configured requests per second.
func (rl *RateLimiter) Limit() float64 {
	return float64(rl.limiter.Limit())
}

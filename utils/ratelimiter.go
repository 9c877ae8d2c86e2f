package utils

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter paces outgoing browser navigations.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a RateLimiter allowing one request per delayMs
// milliseconds, with no burst beyond a single token.
func NewRateLimiter(delayMs int) *RateLimiter {
	interval := time.Duration(delayMs) * time.Millisecond
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the next request is allowed or the context is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

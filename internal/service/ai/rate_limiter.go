package ai

import (
	"context"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is the default QPS limit for model API calls.
const DefaultRateLimit = 10

// RateLimiter throttles calls to the hosted model API. The limit is
// fixed at construction; the service never changes it at runtime.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a rate limiter with the given QPS.
func NewRateLimiter(qps float64) *RateLimiter {
	if qps <= 0 {
		qps = DefaultRateLimit
	}
	burst := int(qps)
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(qps), burst),
	}
}

// Wait blocks until a token is available or the context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Limit returns the configured QPS.
func (r *RateLimiter) Limit() float64 {
	return float64(r.limiter.Limit())
}

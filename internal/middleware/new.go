package middleware

import (
	"taskparse/pkg/log"
	"taskparse/pkg/metrics"
)

// RateLimitConfig configures the per-client limiter.
type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type Middleware struct {
	l       log.Logger
	metrics *metrics.Metrics
	limiter *rateLimiter
}

// New creates the middleware set. m may be nil. The limiter is only
// built when enabled.
func New(l log.Logger, m *metrics.Metrics, rl RateLimitConfig) Middleware {
	mw := Middleware{
		l:       l,
		metrics: m,
	}
	if rl.Enabled && rl.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(rl.RequestsPerMin)
	}
	return mw
}

package middleware

import (
	"pedidos-rapidisimos/pkg/log"
)

// Config configures the shared middlewares.
type Config struct {
	// RateLimitPerMin is the per-client request budget. Zero or less disables limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}

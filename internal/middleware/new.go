package middleware

import (
	pkgLog "banquetpro/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

// New creates the middleware set. mutationsPerMin bounds write traffic
// per client IP.
func New(l pkgLog.Logger, mutationsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(mutationsPerMin),
	}
}

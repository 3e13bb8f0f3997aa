package middleware

import (
	"language-assistant/pkg/log"
)

// Middleware bundles the gin middlewares shared by every API route.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	mw := Middleware{l: l}
	if requestsPerMin > 0 {
		mw.limiter = newRateLimiter(requestsPerMin)
	}
	return mw
}

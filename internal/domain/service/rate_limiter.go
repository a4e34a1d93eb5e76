package service

import "time"

// RateLimitResult is the outcome of a single CheckLimit call.
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetTime time.Time
}

// RateLimiter throttles requests per caller identifier over a trailing time window.
type RateLimiter interface {
	// CheckLimit records one request for identifier if it fits in the window.
	CheckLimit(identifier string) RateLimitResult

	// ResetLimit forgets every request recorded for identifier.
	ResetLimit(identifier string)

	// Limit is the maximum number of requests admitted per window.
	Limit() int
}

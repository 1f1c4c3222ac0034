package ratelimit

import (
	"context"
	"time"
)

// Result is the outcome of a single Allow call.
type Result struct {
	Allowed bool
	// Limit is the bucket capacity (burst).
	Limit int
	// Remaining is the number of whole tokens left after this call.
	Remaining int
	// RetryAfter is how long a rejected caller should wait. Zero when allowed.
	RetryAfter time.Duration
}

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

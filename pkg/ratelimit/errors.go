package ratelimit

import "errors"

var (
	ErrInvalidRate  = errors.New("rate must be positive")
	ErrInvalidBurst = errors.New("burst must be at least 1")
	ErrKeyRequired  = errors.New("key is required")

	ErrInvalidInterval = errors.New("sweep interval must be positive")
)

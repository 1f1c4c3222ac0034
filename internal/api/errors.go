package api

import "errors"

var (
	ErrEmptyBatch    = errors.New("user_agents must contain at least one entry")
	ErrBatchTooLarge = errors.New("too many user agents in one request")
	ErrInvalidBody   = errors.New("request body must be a JSON object with a user_agents array")
	ErrTooLong       = errors.New("user agent exceeds the maximum length")

	errInternal         = errors.New("internal server error")
	errNotFound         = errors.New("route not found")
	errMethodNotAllowed = errors.New("method not allowed")
	errRateLimited      = errors.New("rate limit exceeded")
	errStatsUnavailable = errors.New("statistics backend unavailable")
)

package stats

import "errors"

var (
	ErrUnknownBackend        = errors.New("unknown stats backend")
	ErrFailedToParseRedisURL = errors.New("failed to parse redis connection string")
	ErrRedisNotReady         = errors.New("redis did not become ready within the given time period")
	ErrRecordFailed          = errors.New("failed to record classification")
	ErrSnapshotFailed        = errors.New("failed to read stats snapshot")
)

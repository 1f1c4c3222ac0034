package stats

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/webtools/pkg/useragent"
)

// RedisRecorder stores counters as fields of a single Redis hash so every
// replica contributes to the same totals.
type RedisRecorder struct {
	client redis.UniversalClient
	key    string
}

func NewRedisRecorder(client redis.UniversalClient, key string) *RedisRecorder {
	return &RedisRecorder{client: client, key: key}
}

// Record increments all counters of ua in one MULTI/EXEC round trip.
func (r *RedisRecorder) Record(ctx context.Context, ua useragent.UserAgent) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, f := range fields(ua) {
			pipe.HIncrBy(ctx, r.key, f, 1)
		}
		return nil
	})
	if err != nil {
		return errors.Join(ErrRecordFailed, err)
	}
	return nil
}

func (r *RedisRecorder) Snapshot(ctx context.Context) (Snapshot, error) {
	raw, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return Snapshot{}, errors.Join(ErrSnapshotFailed, err)
	}
	counters, err := parseCounters(raw)
	if err != nil {
		return Snapshot{}, errors.Join(ErrSnapshotFailed, err)
	}
	return buildSnapshot(counters), nil
}

func (r *RedisRecorder) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRecorder) Close() error {
	return r.client.Close()
}

package stats

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/webtools/pkg/logger"
)

// Connect parses cfg.ConnectionURL and pings the server up to RetryAttempts
// times, waiting RetryInterval between attempts, all within ConnectTimeout.
func Connect(ctx context.Context, cfg RedisConfig, log *slog.Logger) (*redis.Client, error) {
	if log == nil {
		log = logger.Discard()
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisURL, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	attempts := max(cfg.RetryAttempts, 1)
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		client := redis.NewClient(opts)
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			log.InfoContext(ctx, "connected to redis", slog.String("addr", opts.Addr), slog.Int("attempt", attempt))
			return client, nil
		}
		_ = client.Close()

		log.WarnContext(ctx, "redis not ready",
			slog.String("addr", opts.Addr),
			slog.Int("attempt", attempt),
			logger.Error(lastErr),
		)

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, errors.Join(ErrRedisNotReady, lastErr)
}

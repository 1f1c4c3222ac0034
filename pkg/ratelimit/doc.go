// Package ratelimit throttles HTTP callers with per-key token buckets built
// on golang.org/x/time/rate.
//
// KeyedLimiter lazily creates one rate.Limiter per key (usually the client
// IP) and forgets keys that stay idle longer than Config.IdleTTL when Sweep
// or RunSweeper runs. Middleware applies any Limiter to a handler chain and
// answers 429 Too Many Requests with a Retry-After header:
//
//	lim, err := ratelimit.NewKeyedLimiter(cfg)
//	if err != nil {
//		return err
//	}
//	go lim.RunSweeper(ctx, time.Minute)
//
//	r.Use(ratelimit.Middleware(lim, ratelimit.ByClientIP))
package ratelimit

package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config describes a per-key token bucket.
type Config struct {
	RequestsPerSecond float64       `env:"RATE_LIMIT_RPS" envDefault:"10"`
	Burst             int           `env:"RATE_LIMIT_BURST" envDefault:"20"`
	IdleTTL           time.Duration `env:"RATE_LIMIT_IDLE_TTL" envDefault:"10m"`
}

// Option configures a KeyedLimiter.
type Option func(*KeyedLimiter)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *KeyedLimiter) {
		if now != nil {
			l.now = now
		}
	}
}

// KeyedLimiter keeps one rate.Limiter per key. Buckets untouched for IdleTTL
// are removed by Sweep.
type KeyedLimiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewKeyedLimiter validates cfg and returns an empty limiter. A zero IdleTTL
// keeps buckets forever.
func NewKeyedLimiter(cfg Config, opts ...Option) (*KeyedLimiter, error) {
	if cfg.RequestsPerSecond <= 0 {
		return nil, ErrInvalidRate
	}
	if cfg.Burst < 1 {
		return nil, ErrInvalidBurst
	}

	l := &KeyedLimiter{
		limit:   rate.Limit(cfg.RequestsPerSecond),
		burst:   cfg.Burst,
		idleTTL: cfg.IdleTTL,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Allow takes one token from the bucket of key. A rejected call does not
// consume anything and reports when a token will be available.
func (l *KeyedLimiter) Allow(ctx context.Context, key string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if key == "" {
		return Result{}, ErrKeyRequired
	}

	now := l.now()
	lim := l.bucketFor(key, now)

	res := lim.ReserveN(now, 1)
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return Result{Limit: l.burst, RetryAfter: delay}, nil
	}

	return Result{
		Allowed:   true,
		Limit:     l.burst,
		Remaining: max(int(lim.TokensAt(now)), 0),
	}, nil
}

func (l *KeyedLimiter) bucketFor(key string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter
}

// Sweep removes buckets idle for longer than IdleTTL and returns how many
// were removed.
func (l *KeyedLimiter) Sweep() int {
	if l.idleTTL <= 0 {
		return 0
	}
	cutoff := l.now().Add(-l.idleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// RunSweeper calls Sweep every interval until ctx is done.
func (l *KeyedLimiter) RunSweeper(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			l.Sweep()
		}
	}
}

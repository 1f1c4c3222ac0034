package api

import "github.com/dmitrymomot/webtools/pkg/ratelimit"

// Config holds API limits loaded from the environment.
type Config struct {
	MaxBatchSize       int   `env:"API_MAX_BATCH_SIZE" envDefault:"100"`
	MaxBodyBytes       int64 `env:"API_MAX_BODY_BYTES" envDefault:"1048576"`
	MaxUserAgentLength int   `env:"API_MAX_USER_AGENT_LENGTH" envDefault:"2048"`
	CacheSize          int   `env:"CLASSIFIER_CACHE_SIZE" envDefault:"4096"`
	RateLimitEnabled   bool  `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimit          ratelimit.Config

	// TrustedProxyHeaders lists client IP headers set by a proxy in front of
	// the service, in priority order. Empty means only the connection peer
	// identifies the client.
	TrustedProxyHeaders []string `env:"TRUSTED_PROXY_HEADERS" envSeparator:","`
}

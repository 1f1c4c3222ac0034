package stats

import "time"

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	Backend  string `env:"STATS_BACKEND" envDefault:"memory"`
	RedisKey string `env:"STATS_REDIS_KEY" envDefault:"uaclassify:stats"`
	Redis    RedisConfig
}

type RedisConfig struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
}

package config

import "time"

// CacheConfig holds the talk cache policy.
// A zero Size means unbounded, a zero TTL means entries never expire.
type CacheConfig struct {
	Size int           `env:"SIZE" envDefault:"500"`
	TTL  time.Duration `env:"TTL" envDefault:"0s"`
}

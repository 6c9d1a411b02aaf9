// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/ChicagoDave/houseplanner/pkg/cache"
)

// Config is the houseplanner server configuration.
type Config struct {
	Addr         string        `env:"HOUSEPLANNER_ADDR"           envDefault:":3000"`
	CacheBackend string        `env:"HOUSEPLANNER_CACHE"          envDefault:"none"`
	SQLitePath   string        `env:"HOUSEPLANNER_SQLITE_PATH"    envDefault:"houseplanner.db"`
	RedisURL     string        `env:"HOUSEPLANNER_REDIS_URL"      envDefault:"redis://localhost:6379/0"`
	CacheTTL     time.Duration `env:"HOUSEPLANNER_CACHE_TTL"      envDefault:"24h"`
	MaxBodyBytes int64         `env:"HOUSEPLANNER_MAX_BODY_BYTES" envDefault:"1048576"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the server configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges env parsing cannot express.
func (c Config) Validate() error {
	switch c.CacheBackend {
	case cache.BackendNone, cache.BackendSQLite, cache.BackendRedis:
	default:
		return fmt.Errorf("HOUSEPLANNER_CACHE: %w: %q", cache.ErrUnknownBackend, c.CacheBackend)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("HOUSEPLANNER_CACHE_TTL must not be negative, got %s", c.CacheTTL)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("HOUSEPLANNER_MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	}
	return nil
}

// Cache returns the cache backend settings.
func (c Config) Cache() cache.Config {
	return cache.Config{
		Backend:    c.CacheBackend,
		SQLitePath: c.SQLitePath,
		RedisURL:   c.RedisURL,
	}
}

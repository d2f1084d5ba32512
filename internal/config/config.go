// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"

	hqerr "github.com/dither001/mekhq/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	// RedisURL selects the Redis personnel store. Empty keeps personnel in memory.
	RedisURL string `env:"HQ_REDIS_URL"`

	// Seed fixes the campaign random source. Zero draws a fresh crypto seed.
	Seed int64 `env:"HQ_SEED"`

	// NamesFile replaces the embedded name corpus
	NamesFile string `env:"HQ_NAMES_FILE"`

	PercentFemale    int `env:"HQ_PERCENT_FEMALE" envDefault:"50"`
	BatchConcurrency int `env:"HQ_BATCH_CONCURRENCY" envDefault:"4"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, hqerr.WrapWithCode(err, hqerr.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.PercentFemale < 0 || c.PercentFemale > 100 {
		return hqerr.Validationf("HQ_PERCENT_FEMALE must be between 0 and 100, got %d", c.PercentFemale)
	}
	if c.BatchConcurrency < 1 {
		return hqerr.Validationf("HQ_BATCH_CONCURRENCY must be at least 1, got %d", c.BatchConcurrency)
	}
	return nil
}

// UseRedis reports whether a Redis store is configured
func (c *Config) UseRedis() bool {
	return c.RedisURL != ""
}

// RedisOptions parses RedisURL into client options
func (c *Config) RedisOptions() (*redis.Options, error) {
	if !c.UseRedis() {
		return nil, hqerr.InvalidArgument("HQ_REDIS_URL is not set")
	}
	opts, err := redis.ParseURL(c.RedisURL)
	if err != nil {
		return nil, hqerr.WrapWithCode(err, hqerr.CodeInvalidArgument, fmt.Sprintf("invalid HQ_REDIS_URL %q", c.RedisURL))
	}
	return opts, nil
}

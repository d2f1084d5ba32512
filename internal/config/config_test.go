package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dither001/mekhq/internal/config"
	hqerr "github.com/dither001/mekhq/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.False(t, cfg.UseRedis())
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, 50, cfg.PercentFemale)
	assert.Equal(t, 4, cfg.BatchConcurrency)

	_, err = cfg.RedisOptions()
	assert.True(t, hqerr.IsInvalidArgument(err))
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("HQ_REDIS_URL", "redis://:secret@localhost:6380/2")
	t.Setenv("HQ_SEED", "3025")
	t.Setenv("HQ_NAMES_FILE", "/tmp/names.yaml")
	t.Setenv("HQ_PERCENT_FEMALE", "30")
	t.Setenv("HQ_BATCH_CONCURRENCY", "8")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, int64(3025), cfg.Seed)
	assert.Equal(t, "/tmp/names.yaml", cfg.NamesFile)
	assert.Equal(t, 30, cfg.PercentFemale)
	assert.Equal(t, 8, cfg.BatchConcurrency)

	opts, err := cfg.RedisOptions()
	require.NoError(t, err)
	assert.Equal(t, "localhost:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		code  hqerr.Code
	}{
		{name: "non numeric seed", key: "HQ_SEED", value: "abc", code: hqerr.CodeInvalidArgument},
		{name: "percent too high", key: "HQ_PERCENT_FEMALE", value: "101", code: hqerr.CodeValidation},
		{name: "zero concurrency", key: "HQ_BATCH_CONCURRENCY", value: "0", code: hqerr.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			require.Error(t, err)
			assert.Equal(t, tt.code, hqerr.GetCode(err))
		})
	}
}

func TestRedisOptions_BadURL(t *testing.T) {
	cfg := &config.Config{RedisURL: "http://nope", PercentFemale: 50, BatchConcurrency: 1}

	_, err := cfg.RedisOptions()
	assert.True(t, hqerr.IsInvalidArgument(err))
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viralizza/internal/config/configs"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.EqualValues(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Minute, cfg.Poller.Interval)
	assert.Equal(t, 1, cfg.Poller.Concurrency)
	assert.Equal(t, 0.95, cfg.Payout.ClosingThreshold)
	assert.Equal(t, 10, cfg.Payout.LeaderboardSize)
	assert.Equal(t, configs.StoragePostgres, cfg.Storage.Driver)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "text", cfg.Log.SlogFormat())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("POLLER_INTERVAL", "30s")
	t.Setenv("PAYOUT_CLOSING_THRESHOLD", "0.9")
	t.Setenv("PROVIDER_RATE_PER_SECOND", "2.5")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/payouts?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Poller.Interval)
	assert.Equal(t, 0.9, cfg.Payout.ClosingThreshold)
	assert.Equal(t, 2.5, cfg.Provider.RatePerSecond)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, configs.StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("POLLER_INTERVAL", "soon")
	_, err := Load()
	assert.Error(t, err)
}

package config

import (
	"flag"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8084", cfg.RunAddress)
	assert.True(t, decimal.RequireFromString("125.90").Equal(cfg.ExchangeRate))
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, time.Second, cfg.CountdownTick)
	assert.False(t, cfg.StorageEnabled())
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("EXCHANGE_RATE", "130.5")
	t.Setenv("UPLOAD_TIMEOUT", "5s")
	t.Setenv("B2_ACCOUNT_ID", "acc")
	t.Setenv("B2_APPLICATION_KEY", "key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("130.5").Equal(cfg.ExchangeRate))
	assert.Equal(t, 5*time.Second, cfg.UploadTimeout)
	assert.True(t, cfg.StorageEnabled())
}

func TestLoadConfig_InvalidRate(t *testing.T) {
	tests := []struct {
		name string
		rate string
	}{
		{"not a number", "abc"},
		{"zero", "0"},
		{"negative", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EXCHANGE_RATE", tt.rate)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_NonPositiveDurations(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero tick", "COUNTDOWN_TICK", "0s"},
		{"negative tick", "COUNTDOWN_TICK", "-1s"},
		{"zero token ttl", "TOKEN_TTL", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestConfig_parseFlags(t *testing.T) {
	cfg := &Config{RunAddress: "localhost:8084", LogLevel: "info"}
	fset := flag.NewFlagSet("test", flag.ContinueOnError)

	cfg.parseFlags(fset, []string{"-a", ":9000", "-r", "localhost:6379", "-l", "debug"})

	assert.Equal(t, ":9000", cfg.RunAddress)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

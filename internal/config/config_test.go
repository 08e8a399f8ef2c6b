package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 0, cfg.CatalogLatencyMs)
	assert.Equal(t, "en-US", cfg.DialogflowLanguageCode)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("CATALOG_LATENCY_MS", "100")
	t.Setenv("CACHE_TTL", "not-a-number")

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 100, cfg.CatalogLatencyMs)
	// Unparseable values fall back to the default.
	assert.Equal(t, 300, cfg.CacheTTL)
}

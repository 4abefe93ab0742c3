package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	if old, ok := os.LookupEnv(key); ok {
		os.Unsetenv(key)
		t.Cleanup(func() { os.Setenv(key, old) })
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"API_BASE_URL", "API_TIMEOUT_MS", "ENABLE_API", "LOG_MODE"} {
		unsetEnv(t, key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, 30000, cfg.TimeoutMS)
	assert.True(t, cfg.EnableAPI)
	assert.Equal(t, "development", cfg.LogMode)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("API_TIMEOUT_MS", "5000")
	t.Setenv("ENABLE_API", "false")
	t.Setenv("LOCAL_STORE_PATH", "/tmp/local.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.False(t, cfg.EnableAPI)
	assert.Equal(t, "/tmp/local.db", cfg.LocalStorePath)
}

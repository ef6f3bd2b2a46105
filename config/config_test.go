package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "https://api.street.test")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")

	cfg, err := Load("testdata/missing.env")
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Address)
	assert.Equal(t, 10*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 20, cfg.DefaultPageSize)
	assert.Equal(t, 100, cfg.MaxPageSize)
	assert.Equal(t, 300, cfg.SearchDebounceMS)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "stdout", cfg.Log.Output)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "https://api.street.test")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")
	t.Setenv("DEFAULT_PAGE_SIZE", "50")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CACHE_TTL", "2m")

	cfg, err := Load("testdata/missing.env")
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.DefaultPageSize)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
}

func TestLoadRequiresBackendAndSecret(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load("testdata/missing.env")
	assert.Error(t, err)
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "https://api.street.test")
	t.Setenv("JWT_SECRET", "short")

	_, err := Load("testdata/missing.env")
	assert.ErrorContains(t, err, "JWT_SECRET")
}

package main

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streetadmin/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Address:              ":0",
		BackendBaseURL:       "http://127.0.0.1:1",
		BackendTimeout:       time.Second,
		JWTSecret:            "0123456789abcdef0123456789abcdef",
		SessionTTL:           time.Hour,
		CacheTTL:             time.Minute,
		CacheSweep:           time.Minute,
		DefaultPageSize:      20,
		MaxPageSize:          100,
		SearchDebounceMS:     300,
		LoginRateLimitMax:    2,
		LoginRateLimitWindow: time.Minute,
	}
}

func TestNewAppServesHealthAndVersion(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	app, cache := newApp(testConfig(), log)
	defer cache.Close()

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp, err = app.Test(httptest.NewRequest("GET", "/version", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"version":"dev"`)
}

func TestNewAppThrottlesLogin(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	app, cache := newApp(testConfig(), log)
	defer cache.Close()

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/login", nil)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		last = resp.StatusCode
	}
	assert.Equal(t, 429, last)
}

func TestPagesRequireSession(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	app, cache := newApp(testConfig(), log)
	defer cache.Close()

	resp, err := app.Test(httptest.NewRequest("GET", "/users", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "/login?next=%2Fusers", resp.Header.Get("Location"))
}

package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"macro-stress/internal/api/middleware"
	"macro-stress/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadServerConfig_Defaults(t *testing.T) {
	cfg, err := loadServerConfig(env(nil))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.RunTTL)
	assert.Zero(t, cfg.RateLimit)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoadServerConfig_FromEnv(t *testing.T) {
	cfg, err := loadServerConfig(env(map[string]string{
		"API_PORT":             "9090",
		"API_ENV":              "production",
		"API_RATE_LIMIT":       "2.5",
		"API_RATE_BURST":       "5",
		"RUN_STORE_TTL":        "15m",
		"REDIS_ADDR":           "localhost:6379",
		"REDIS_DB":             "2",
		"CORS_ALLOWED_ORIGINS": "https://a.example.com, https://b.example.com,",
	}))
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.Equal(t, 5, cfg.RateBurst)
	assert.Equal(t, 15*time.Minute, cfg.RunTTL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}

func TestLoadServerConfig_Errors(t *testing.T) {
	for _, m := range []map[string]string{
		{"API_RATE_LIMIT": "fast"},
		{"API_RATE_BURST": "1.5"},
		{"RUN_STORE_TTL": "an hour"},
		{"RUN_STORE_TTL": "-1m"},
		{"REDIS_DB": "x"},
	} {
		_, err := loadServerConfig(env(m))
		assert.Error(t, err, m)
	}
}

func TestRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg, err := loadServerConfig(env(nil))
	require.NoError(t, err)
	cfg.ScenarioDir = filepath.Join("..", "..", "examples", "scenarios")

	var logs bytes.Buffer
	r := newRouter(cfg, store.NewMemoryStore(time.Minute), middleware.NewMetrics(), zerolog.New(&logs))

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	w := get("/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	assert.Equal(t, http.StatusOK, get("/api/v1/columns").Code)
	assert.Equal(t, http.StatusOK, get("/api/v1/scenarios/rank").Code)
	assert.Equal(t, http.StatusNotFound, get("/api/v1/nothing").Code)

	w = get("/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `route="/api/v1/columns"`)
	assert.Contains(t, w.Body.String(), `macro_stress_simulations_total{outcome="ok"} 2`)

	assert.True(t, strings.Contains(logs.String(), `"path":"/health"`))
}

package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"macro-stress/internal/api/handlers"
)

type serverConfig struct {
	Port           string
	Env            string
	LogLevel       string
	RateLimit      float64
	RateBurst      int
	RunTTL         time.Duration
	RedisAddr      string
	RedisDB        int
	AllowedOrigins []string
	ScenarioDir    string
}

// loadServerConfig reads settings through getenv (os.Getenv in main).
func loadServerConfig(getenv func(string) string) (serverConfig, error) {
	cfg := serverConfig{
		Port:        "8080",
		Env:         getenv("API_ENV"),
		LogLevel:    getenv("LOG_LEVEL"),
		RateBurst:   20,
		RunTTL:      time.Hour,
		RedisAddr:   getenv("REDIS_ADDR"),
		ScenarioDir: handlers.ScenarioDir(),
	}
	if v := getenv("API_PORT"); v != "" {
		cfg.Port = v
	}

	var err error
	if v := getenv("API_RATE_LIMIT"); v != "" {
		if cfg.RateLimit, err = strconv.ParseFloat(v, 64); err != nil {
			return cfg, fmt.Errorf("API_RATE_LIMIT: %w", err)
		}
	}
	if v := getenv("API_RATE_BURST"); v != "" {
		if cfg.RateBurst, err = strconv.Atoi(v); err != nil {
			return cfg, fmt.Errorf("API_RATE_BURST: %w", err)
		}
	}
	if v := getenv("RUN_STORE_TTL"); v != "" {
		if cfg.RunTTL, err = time.ParseDuration(v); err != nil {
			return cfg, fmt.Errorf("RUN_STORE_TTL: %w", err)
		}
		if cfg.RunTTL <= 0 {
			return cfg, fmt.Errorf("RUN_STORE_TTL must be positive, got %s", v)
		}
	}
	if v := getenv("REDIS_DB"); v != "" {
		if cfg.RedisDB, err = strconv.Atoi(v); err != nil {
			return cfg, fmt.Errorf("REDIS_DB: %w", err)
		}
	}
	for _, o := range strings.Split(getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}
	return cfg, nil
}

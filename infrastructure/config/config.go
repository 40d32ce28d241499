package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the process-wide settings. It is read once at startup and
// read-only afterwards.
type Config struct {
	CheckoutURL    string
	ActionTimeout  time.Duration
	InstanceName   string
	MaxSessions    int
	Headless       bool
	ListenAddr     string
	RequestsPerSec float64
}

const (
	defaultCheckoutURL    = "https://naturalvalle.com.br/checkout/"
	defaultTimeoutMs      = 15000
	defaultInstance       = "instancia-padrao"
	defaultMaxSessions    = 2
	defaultPort           = "8000"
	defaultRequestsPerSec = 1.0
)

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		CheckoutURL:  envOr("CHECKOUT_URL", defaultCheckoutURL),
		InstanceName: envOr("INSTANCE_NAME", defaultInstance),
		Headless:     envOr("HEADLESS", "true") != "false",
		ListenAddr:   ":" + envOr("PORT", defaultPort),
	}

	timeoutMs, err := envInt("ACTION_TIMEOUT_MS", defaultTimeoutMs)
	if err != nil {
		return nil, err
	}
	if timeoutMs <= 0 {
		return nil, fmt.Errorf("ACTION_TIMEOUT_MS must be positive, got %d", timeoutMs)
	}
	cfg.ActionTimeout = time.Duration(timeoutMs) * time.Millisecond

	cfg.MaxSessions, err = envInt("MAX_SESSIONS", defaultMaxSessions)
	if err != nil {
		return nil, err
	}
	if cfg.MaxSessions < 1 {
		return nil, fmt.Errorf("MAX_SESSIONS must be at least 1, got %d", cfg.MaxSessions)
	}

	cfg.RequestsPerSec, err = envFloat("REQUESTS_PER_SECOND", defaultRequestsPerSec)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

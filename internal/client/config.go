package client

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL = "http://localhost:8080"
	defaultTimeout = 10 * time.Second
)

// Config holds the store client settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// LoadConfig reads the client settings from MONEYTRACKER_API_URL,
// MONEYTRACKER_API_KEY and MONEYTRACKER_TIMEOUT.
func LoadConfig() (Config, error) {
	cfg := Config{
		BaseURL: strings.TrimSpace(os.Getenv("MONEYTRACKER_API_URL")),
		APIKey:  os.Getenv("MONEYTRACKER_API_KEY"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	timeout, err := parseTimeout(os.Getenv("MONEYTRACKER_TIMEOUT"))
	if err != nil {
		return Config{}, err
	}
	cfg.Timeout = timeout
	return cfg, nil
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return defaultTimeout, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid MONEYTRACKER_TIMEOUT %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("MONEYTRACKER_TIMEOUT must be positive, got %v", d)
	}
	return d, nil
}

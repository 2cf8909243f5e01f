// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config holds application configuration
type Config struct {
	// Server
	Port     string
	Env      string
	LogLevel string

	// APIKey protects the /api routes when non-empty.
	APIKey string

	// Location is used as "now" for server-side month and day computations.
	Location *time.Location

	// Locale drives description collation and date bucket labels.
	Locale language.Tag

	// EnvFileLoaded reports whether a .env file was read.
	EnvFileLoaded bool
}

// Load loads configuration from environment variables. A missing .env file is
// not an error.
func Load() (*Config, error) {
	envErr := godotenv.Load()

	cfg := &Config{
		EnvFileLoaded: envErr == nil,

		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", ""),
		APIKey:   getEnv("API_KEY", ""),
	}

	tz := getEnv("TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tz, err)
	}
	cfg.Location = loc

	locale := getEnv("LOCALE", "en")
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid LOCALE %q: %w", locale, err)
	}
	cfg.Locale = tag

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

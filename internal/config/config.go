// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned when no upstream API key is configured.
var ErrMissingAPIKey = errors.New("OPENWEATHER_API_KEY is not set")

const defaultBaseURL = "https://api.openweathermap.org"

var validate = validator.New()

// Config contains service settings.
type Config struct {
	APIKey      string         `validate:"required"`
	BaseURL     string         `validate:"required,url"`
	Port        string         `validate:"required,numeric"`
	CORSOrigins []string       `validate:"min=1,dive,required"`
	HTTPTimeout time.Duration  `validate:"gt=0"`
	Location    *time.Location `validate:"required"`
	LogLevel    string         `validate:"oneof=trace debug info warn warning error fatal panic"`
}

// Load reads configuration from the environment, loading a .env file first if one exists.
func Load() (*Config, error) {
	// a missing .env file is fine, the environment may be set up already
	_ = godotenv.Load()

	return FromEnv(os.Getenv)
}

// FromEnv builds configuration using the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	apiKey := strings.TrimSpace(getenv("OPENWEATHER_API_KEY"))
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	timeout, err := time.ParseDuration(getenvDefault(getenv, "HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	loc := time.Local
	if tz := getenv("FORECAST_TIMEZONE"); tz != "" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid FORECAST_TIMEZONE: %w", err)
		}
	}

	cfg := &Config{
		APIKey:      apiKey,
		BaseURL:     strings.TrimRight(getenvDefault(getenv, "OPENWEATHER_BASE_URL", defaultBaseURL), "/"),
		Port:        getenvDefault(getenv, "PORT", "8080"),
		CORSOrigins: splitList(getenvDefault(getenv, "CORS_ORIGINS", "*")),
		HTTPTimeout: timeout,
		Location:    loc,
		LogLevel:    strings.ToLower(getenvDefault(getenv, "LOG_LEVEL", "info")),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")

	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}

	return list
}

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, loaded from environment
// variables. A .env file in the working directory is applied first when
// present.
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	DevMode bool   `env:"DEV_MODE" envDefault:"false"`

	JWTSecret string `env:"JWT_SECRET"`

	// Empty disables the summary cache entirely.
	RedisEndpoint string `env:"REDIS_ENDPOINT"`

	GeminiAPIKey string        `env:"GEMINI_API_KEY"`
	AITimeout    time.Duration `env:"AI_TIMEOUT" envDefault:"10s"`
	AIRateLimit  float64       `env:"AI_RATE_LIMIT" envDefault:"1"`
	AIRateBurst  int           `env:"AI_RATE_BURST" envDefault:"5"`
}

func Load() (*Config, error) {
	// Best effort: absence of a .env file is not an error
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration from environment: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is not set")
	}
	if cfg.AITimeout <= 0 {
		cfg.AITimeout = 10 * time.Second
	}
	if cfg.AIRateLimit <= 0 {
		cfg.AIRateLimit = 1
	}
	if cfg.AIRateBurst <= 0 {
		cfg.AIRateBurst = 5
	}

	return cfg, nil
}

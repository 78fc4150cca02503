// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings that are not passed as positional arguments.
// A zero RouteLength keeps the board's own route limit.
type Config struct {
	LogLevel    string `env:"MARKOV_LOG_LEVEL"`
	Debug       bool   `env:"MARKOV_DEBUG"`
	Color       bool   `env:"MARKOV_COLOR"`
	Metrics     bool   `env:"MARKOV_METRICS"`
	RouteLength int    `env:"MARKOV_ROUTE_LENGTH"`
	TweetLength int    `env:"MARKOV_TWEET_LENGTH" envDefault:"20"`
	BoardPath   string `env:"MARKOV_BOARD"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.RouteLength < 0 {
		return Config{}, fmt.Errorf("MARKOV_ROUTE_LENGTH must not be negative, got %d", cfg.RouteLength)
	}
	if cfg.TweetLength < 1 {
		return Config{}, fmt.Errorf("MARKOV_TWEET_LENGTH must be positive, got %d", cfg.TweetLength)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

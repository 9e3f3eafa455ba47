package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
// All required fields are validated at startup to ensure fail-fast behavior.
type Config struct {
	// Server configuration
	ServerAddr string
	LogLevel   string

	// Helius configuration
	HeliusAPIKey  string
	HeliusBaseURL string
	HeliusTimeout time.Duration

	// Transaction listing configuration
	DefaultTxLimit int
	MaxTxLimit     int
}

// Load reads configuration from environment variables and validates all required fields.
// Returns an error if any required configuration is missing or invalid.
func Load() (*Config, error) {
	cfg := &Config{}
	var errs []error

	// Server configuration
	cfg.ServerAddr = getEnvOrDefault("SERVER_ADDR", ":8080")
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Helius configuration
	cfg.HeliusAPIKey = os.Getenv("HELIUS_API_KEY")
	if cfg.HeliusAPIKey == "" {
		errs = append(errs, fmt.Errorf("HELIUS_API_KEY is required"))
	}

	cfg.HeliusBaseURL = getEnvOrDefault("HELIUS_BASE_URL", "https://api.helius.xyz")

	timeout, err := parseDuration("HELIUS_TIMEOUT", "10s")
	if err != nil {
		errs = append(errs, err)
	} else {
		cfg.HeliusTimeout = timeout
	}

	// Transaction listing configuration
	defaultLimit, err := parseInt("DEFAULT_TX_LIMIT", 3)
	if err != nil {
		errs = append(errs, err)
	} else {
		cfg.DefaultTxLimit = defaultLimit
	}

	// 100 is the Helius per-page maximum
	maxLimit, err := parseInt("MAX_TX_LIMIT", 100)
	if err != nil {
		errs = append(errs, err)
	} else {
		cfg.MaxTxLimit = maxLimit
	}

	// Validate limits
	if cfg.DefaultTxLimit < 0 {
		errs = append(errs, fmt.Errorf("DEFAULT_TX_LIMIT cannot be negative"))
	}
	if cfg.MaxTxLimit <= 0 {
		errs = append(errs, fmt.Errorf("MAX_TX_LIMIT must be positive"))
	}
	if cfg.DefaultTxLimit > cfg.MaxTxLimit {
		errs = append(errs, fmt.Errorf("DEFAULT_TX_LIMIT (%d) cannot be greater than MAX_TX_LIMIT (%d)",
			cfg.DefaultTxLimit, cfg.MaxTxLimit))
	}

	// Return all validation errors
	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %v", errs)
	}

	return cfg, nil
}

// MustLoad is like Load but panics if configuration is invalid.
// Useful for server initialization where misconfiguration should halt startup.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}

// Validate checks if the configuration is valid.
// This is useful for testing configuration without loading from env.
func (c *Config) Validate() error {
	var errs []error

	if c.HeliusAPIKey == "" {
		errs = append(errs, fmt.Errorf("HeliusAPIKey is required"))
	}

	if c.HeliusBaseURL == "" {
		errs = append(errs, fmt.Errorf("HeliusBaseURL is required"))
	}

	if c.HeliusTimeout <= 0 {
		errs = append(errs, fmt.Errorf("HeliusTimeout must be positive"))
	}

	if c.DefaultTxLimit < 0 {
		errs = append(errs, fmt.Errorf("DefaultTxLimit cannot be negative"))
	}

	if c.MaxTxLimit <= 0 {
		errs = append(errs, fmt.Errorf("MaxTxLimit must be positive"))
	}

	if c.DefaultTxLimit > c.MaxTxLimit {
		errs = append(errs, fmt.Errorf("DefaultTxLimit cannot be greater than MaxTxLimit"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errs)
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDuration parses a duration from an environment variable or uses a default.
func parseDuration(key, defaultValue string) (time.Duration, error) {
	value := getEnvOrDefault(key, defaultValue)
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, value, err)
	}
	return duration, nil
}

// parseInt parses an integer from an environment variable or uses a default.
func parseInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, value, err)
	}
	return result, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the rental manager
type Config struct {
	Owner  OwnerConfig
	Logger LoggerConfig
	Ledger LedgerConfig
}

// OwnerConfig holds the identity of the session's owner
type OwnerConfig struct {
	Name string `validate:"required"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level  string `validate:"oneof=trace debug info warn error"`
	Format string `validate:"oneof=text json"`
}

// LedgerConfig controls the in-memory session ledger
type LedgerConfig struct {
	Report bool
}

// Load loads configuration from the environment, reading .env first when present
func Load() (*Config, error) {
	// A missing .env file is not an error
	_ = godotenv.Load()

	cfg := &Config{
		Owner: OwnerConfig{
			Name: getEnv("OWNER_NAME", "John Doe"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "warn"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Ledger: LedgerConfig{
			Report: getEnvAsBool("LEDGER_REPORT", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the presence and allowed values of every field
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsBool gets an environment variable as bool with a fallback value
func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Rules      RulesConfig
	Correction CorrectionConfig
	Queue      QueueConfig
}

// RulesConfig locates the optional rule-table overlay file.
type RulesConfig struct {
	Path string
}

// CorrectionConfig governs the heuristic spreadsheet correction subsystem.
type CorrectionConfig struct {
	// Enabled is the single switch that disables the whole heuristic layer.
	Enabled bool
	MaxRows int
	MaxCols int
}

// QueueConfig sizes the batch routing worker pool.
type QueueConfig struct {
	Workers      int
	Size         int
	RouteTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Rules: RulesConfig{
			Path: getEnv("RULES_PATH", ""),
		},
		Correction: CorrectionConfig{
			Enabled: getEnvAsBool("SHEET_CORRECTION_ENABLED", true),
			MaxRows: getEnvAsInt("SHEET_CORRECTION_MAX_ROWS", 100),
			MaxCols: getEnvAsInt("SHEET_CORRECTION_MAX_COLS", 10),
		},
		Queue: QueueConfig{
			Workers:      getEnvAsInt("ROUTE_WORKERS", 4),
			Size:         getEnvAsInt("ROUTE_QUEUE_SIZE", 256),
			RouteTimeout: getEnvAsDuration("ROUTE_TIMEOUT", time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Correction.MaxRows <= 0 {
		return NewAppError("CONFIG_ERROR", "SHEET_CORRECTION_MAX_ROWS must be positive", ErrInvalidInput)
	}
	if c.Correction.MaxCols <= 0 {
		return NewAppError("CONFIG_ERROR", "SHEET_CORRECTION_MAX_COLS must be positive", ErrInvalidInput)
	}
	if c.Queue.Workers <= 0 {
		return NewAppError("CONFIG_ERROR", "ROUTE_WORKERS must be positive", ErrInvalidInput)
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type Config struct {
	CatalogBackend string
	CatalogDSN     string
	LogLevel       zapcore.Level
	StrictQuantity bool
}

// Load reads the configuration from the environment, falling back to defaults
func Load() (*Config, error) {
	cfg := &Config{
		CatalogBackend: strings.ToLower(getEnv("CATALOG_BACKEND", BackendMemory)),
		CatalogDSN:     getEnv("CATALOG_DSN", ":memory:"),
	}

	switch cfg.CatalogBackend {
	case BackendMemory, BackendSQLite:
	default:
		return nil, fmt.Errorf("invalid CATALOG_BACKEND %q: want %q or %q", cfg.CatalogBackend, BackendMemory, BackendSQLite)
	}

	level, err := zapcore.ParseLevel(getEnv("LOG_LEVEL", "warn"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	strict, err := strconv.ParseBool(getEnv("STRICT_QUANTITY", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid STRICT_QUANTITY: %w", err)
	}
	cfg.StrictQuantity = strict

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

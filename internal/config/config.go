package config

import (
	"fmt"
	"os"
	"strconv"
)

// Store backends. Memory is the faithful port of the app's in-component
// arrays; sqlite runs the same stores over an in-memory SQLite database.
// Neither survives a restart -- the app kept no state across reloads.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Store configuration
	StoreBackend string // memory or sqlite
	SQLiteDSN    string
	SQLiteConns  int

	// API defaults
	APIVersion string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "3000"),
		StoreBackend: getEnv("STORE_BACKEND", StoreMemory),
		SQLiteDSN:    getEnv("SQLITE_DSN", "file::memory:?cache=shared"),
		SQLiteConns:  getEnvAsInt("SQLITE_CONNECTION_LIMIT", 1),
		APIVersion:   getEnv("API_VERSION", "1.0.0"),
	}

	if cfg.StoreBackend != StoreMemory && cfg.StoreBackend != StoreSQLite {
		return nil, fmt.Errorf("unsupported STORE_BACKEND: %s", cfg.StoreBackend)
	}
	if cfg.SQLiteConns < 1 {
		return nil, fmt.Errorf("SQLITE_CONNECTION_LIMIT must be at least 1")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

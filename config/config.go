package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	Env Environment

	// Server configuration
	ServerHost string
	ServerPort string

	// Storage configuration
	Storage StorageConfig

	// Catalog defaults
	DefaultCategory     string
	ViewGroupByCategory bool

	LogLevel string
}

// LoadConfig creates a new Config from environment variables, applying
// defaults for anything unset, and validates the result.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	cfg := &Config{
		Env:        env,
		ServerHost: getEnv("SERVER_HOST", "127.0.0.1"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Storage: StorageConfig{
			Driver:     StorageDriver(strings.ToLower(getEnv("STORAGE_DRIVER", string(DriverSQLite)))),
			Path:       getEnv("STORAGE_PATH", "recipes.db"),
			Key:        getEnv("STORAGE_KEY", "recipes"),
			LegacyKey:  getEnv("STORAGE_LEGACY_KEY", "recipeBook"),
			QuotaBytes: getEnvInt64("STORAGE_QUOTA_BYTES", 5*1024*1024),
		},
		DefaultCategory:     getEnv("DEFAULT_CATEGORY", "General"),
		ViewGroupByCategory: getEnvBool("VIEW_GROUP_BY_CATEGORY", true),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}

	// Tests never touch the configured file unless asked to.
	if env == Test && os.Getenv("STORAGE_DRIVER") == "" {
		cfg.Storage.Driver = DriverMemory
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return def
}

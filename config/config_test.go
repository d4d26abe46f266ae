package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"CI", "ENV", "SERVER_HOST", "SERVER_PORT", "STORAGE_DRIVER", "STORAGE_PATH",
		"STORAGE_KEY", "STORAGE_LEGACY_KEY", "STORAGE_QUOTA_BYTES", "DEFAULT_CATEGORY",
		"VIEW_GROUP_BY_CATEGORY", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("STORAGE_PATH", "/tmp/catalog.db")
	t.Setenv("STORAGE_QUOTA_BYTES", "1024")
	t.Setenv("VIEW_GROUP_BY_CATEGORY", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Development, cfg.Env)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/catalog.db", cfg.Storage.Path)
	assert.Equal(t, int64(1024), cfg.Storage.QuotaBytes)
	assert.False(t, cfg.ViewGroupByCategory)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.ServerHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "recipes.db", cfg.Storage.Path)
	assert.Equal(t, "recipes", cfg.Storage.Key)
	assert.Equal(t, "recipeBook", cfg.Storage.LegacyKey)
	assert.Equal(t, int64(5*1024*1024), cfg.Storage.QuotaBytes)
	assert.Equal(t, "General", cfg.DefaultCategory)
	assert.True(t, cfg.ViewGroupByCategory)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_TestEnvUsesMemoryStore(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Test, cfg.Env)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ServerHost:      "localhost",
			ServerPort:      "8080",
			DefaultCategory: "General",
			LogLevel:        "info",
			Storage: StorageConfig{
				Driver:    DriverSQLite,
				Path:      "recipes.db",
				Key:       "recipes",
				LegacyKey: "recipeBook",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.ServerPort = "http" }, wantErr: true},
		{name: "port out of range", mutate: func(c *Config) { c.ServerPort = "70000" }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "redis" }, wantErr: true},
		{name: "sqlite without path", mutate: func(c *Config) { c.Storage.Path = "" }, wantErr: true},
		{name: "memory without path", mutate: func(c *Config) { c.Storage.Driver = DriverMemory; c.Storage.Path = "" }},
		{name: "same keys", mutate: func(c *Config) { c.Storage.LegacyKey = "recipes" }, wantErr: true},
		{name: "negative quota", mutate: func(c *Config) { c.Storage.QuotaBytes = -1 }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

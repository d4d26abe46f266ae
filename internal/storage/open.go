package storage

import (
	"context"
	"fmt"

	"github.com/pageza/recipe-catalog/config"
	"github.com/pageza/recipe-catalog/internal/database"
	"github.com/pageza/recipe-catalog/internal/kv"
)

// Backend is an opened key-value store plus its lifecycle hooks.
type Backend struct {
	Store kv.Store
	// Ping reports whether the backing medium is reachable.
	Ping  func(ctx context.Context) error
	Close func() error
}

// Open builds the store selected by cfg, wrapped in its quota.
func Open(cfg config.StorageConfig) (*Backend, error) {
	b := &Backend{
		Ping:  func(context.Context) error { return nil },
		Close: func() error { return nil },
	}

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := database.New(cfg.Path)
		if err != nil {
			return nil, err
		}
		b.Store = kv.NewGormStore(db)
		b.Ping = func(ctx context.Context) error { return database.HealthCheck(ctx, db) }
		b.Close = func() error { return database.Close(db) }
	case config.DriverMemory:
		b.Store = kv.NewMemoryStore()
	case config.DriverDisabled:
		b.Store = kv.Disabled{}
		b.Ping = func(context.Context) error { return kv.ErrDisabled }
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}

	b.Store = kv.WithQuota(b.Store, cfg.QuotaBytes)
	return b, nil
}

// NewAdapterFromConfig opens the configured backend and wraps it in an
// Adapter using the configured keys.
func NewAdapterFromConfig(cfg *config.Config) (*Adapter, *Backend, error) {
	b, err := Open(cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	a := NewAdapter(b.Store, cfg.Storage.Key,
		WithLegacyKey(cfg.Storage.LegacyKey),
		WithDefaultCategory(cfg.DefaultCategory),
	)
	return a, b, nil
}

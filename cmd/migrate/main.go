package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/pageza/recipe-catalog/config"
	"github.com/pageza/recipe-catalog/internal/logger"
	"github.com/pageza/recipe-catalog/internal/storage"
)

// migrate loads the stored list once, which moves legacy data to the
// canonical key, backs up anything unreadable and seeds an empty store.
func main() {
	listBackups := flag.Bool("list-backups", false, "Print the keys of backed-up corrupt values and exit")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Init(config.GetEnvironment(), "info")
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.Env, cfg.LogLevel)

	if err := run(cfg, *listBackups); err != nil {
		log.Error().Err(err).Msg("Migration failed")
		os.Exit(1)
	}
}

func run(cfg *config.Config, listBackups bool) error {
	adapter, backend, err := storage.NewAdapterFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer backend.Close()

	ctx := context.Background()

	if listBackups {
		keys, err := adapter.Backups(ctx)
		if err != nil {
			return fmt.Errorf("list backups: %w", err)
		}
		for _, k := range keys {
			fmt.Println(k)
		}
		return nil
	}

	recipes, err := adapter.Load(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%d recipes stored under %q\n", len(recipes), adapter.Key())
	return nil
}

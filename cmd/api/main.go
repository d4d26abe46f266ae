package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/pageza/recipe-catalog/config"
	"github.com/pageza/recipe-catalog/internal/logger"
	"github.com/pageza/recipe-catalog/internal/server"
	"github.com/pageza/recipe-catalog/internal/service"
	"github.com/pageza/recipe-catalog/internal/storage"
)

func main() {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Init(config.GetEnvironment(), "info")
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.Env, cfg.LogLevel)

	adapter, backend, err := storage.NewAdapterFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", string(cfg.Storage.Driver)).Msg("Failed to open storage")
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close storage")
		}
	}()

	recipes := service.NewRecipeService(adapter, service.WithDefaultCategory(cfg.DefaultCategory))
	if err := recipes.Init(context.Background()); err != nil {
		log.Error().Err(err).Msg("Recipe catalog started with unreadable data")
	}

	srv := server.New(cfg, recipes, backend.Ping)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Error().Err(err).Msg("Server error")
			return
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Received signal")
	}

	log.Info().Msg("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
		return
	}
	log.Info().Msg("Server stopped")
}

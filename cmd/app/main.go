package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quickcourt/config"
	"quickcourt/di"
	"quickcourt/helper"
	"quickcourt/shared/constant"
	"quickcourt/shared/logger"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.Storage.Driver == constant.StorageDriverPostgres && cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate storage schema")
		}
	}

	runtime, cleanup, err := di.InitializeRuntime()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return runtime.HTTP.Serve(ctx)
	})
	group.Go(func() error {
		return runtime.Poller.Run(ctx)
	})
	group.Go(func() error {
		return runtime.Push.Run(ctx)
	})

	err = group.Wait()

	runtime.Center.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if shutdownErr := runtime.Otel.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Error().Err(shutdownErr).Msg("Failed to flush traces")
	}

	if err != nil {
		log.Error().Err(err).Msg("Service stopped with error")

		cleanup()
		os.Exit(1)
	}

	log.Info().Msg("Service stopped")
}

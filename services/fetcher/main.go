package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/02loveslollipop/energy-consumption-predictor/internal/artifact"
	"github.com/02loveslollipop/energy-consumption-predictor/internal/logging"
	"github.com/02loveslollipop/energy-consumption-predictor/internal/model"
	"github.com/02loveslollipop/energy-consumption-predictor/services/fetcher/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("fetcher failed")
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path := cfg.Artifact.LocalPath
	src := cfg.Artifact.Source()

	if cfg.DryRun {
		log.Info().Str("path", path).Str("source", src.String()).Msg("dry-run: skipping fetch")
		return nil
	}

	fetched, err := artifact.Ensure(ctx, path, src)
	if err != nil {
		return err
	}

	ensemble, err := model.LoadFile(path)
	if err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}

	log.Info().
		Str("path", path).
		Bool("fetched", fetched).
		Int("estimators", ensemble.Len()).
		Msg("model artifact ready")
	return nil
}

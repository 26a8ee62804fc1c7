package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/02loveslollipop/energy-consumption-predictor/internal/artifact"
	"github.com/02loveslollipop/energy-consumption-predictor/internal/logging"
	"github.com/02loveslollipop/energy-consumption-predictor/internal/model"
	"github.com/02loveslollipop/energy-consumption-predictor/services/api/config"
	httpserver "github.com/02loveslollipop/energy-consumption-predictor/services/api/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config error")
	}
	logging.Setup(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path := cfg.Artifact.LocalPath
	if _, err := artifact.Ensure(ctx, path, cfg.Artifact.Source()); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("model retrieval error")
	}

	ensemble, err := model.LoadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("model load error")
	}
	log.Info().Int("estimators", ensemble.Len()).Msg("model loaded")

	srv := httpserver.New(cfg, ensemble)
	log.Info().Str("addr", cfg.ListenAddr()).Msg("predictor listening")

	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/02loveslollipop/energy-consumption-predictor/internal/artifact"
)

// Config holds runtime configuration for the artifact prefetch job.
type Config struct {
	Artifact artifact.Settings
	LogLevel string
	DryRun   bool
}

// Load reads configuration from environment variables (optionally .env).
func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{
		Artifact: artifact.LoadSettings(),
		LogLevel: strings.TrimSpace(os.Getenv("LOG_LEVEL")),
	}

	dryRun := strings.TrimSpace(os.Getenv("DRY_RUN"))
	cfg.DryRun = dryRun == "1" || strings.EqualFold(dryRun, "true")

	return cfg
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/02loveslollipop/energy-consumption-predictor/internal/artifact"
)

const (
	defaultPort     = 8080
	defaultMinYear  = 2021
	defaultMaxYear  = 2024
	defaultLocation = "Bahrain"
	defaultLogLevel = "info"
	maxYearSpan     = 200
)

// Config holds environment-driven settings for the predictor API.
type Config struct {
	Port     int
	LogLevel string
	MinYear  int
	MaxYear  int
	Location string
	Artifact artifact.Settings
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		Port:     defaultPort,
		LogLevel: defaultLogLevel,
		MinYear:  defaultMinYear,
		MaxYear:  defaultMaxYear,
		Location: defaultLocation,
		Artifact: artifact.LoadSettings(),
	}

	if portStr := strings.TrimSpace(os.Getenv("PORT")); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	} else if portStr := strings.TrimSpace(os.Getenv("API_PORT")); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid API_PORT: %s", portStr)
		}
	}

	if level := strings.TrimSpace(os.Getenv("LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	if v := strings.TrimSpace(os.Getenv("PREDICTOR_MIN_YEAR")); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid PREDICTOR_MIN_YEAR: %w", err)
		}
		cfg.MinYear = year
	}

	if v := strings.TrimSpace(os.Getenv("PREDICTOR_MAX_YEAR")); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid PREDICTOR_MAX_YEAR: %w", err)
		}
		cfg.MaxYear = year
	}

	if cfg.MinYear > cfg.MaxYear {
		return cfg, fmt.Errorf("PREDICTOR_MIN_YEAR (%d) is after PREDICTOR_MAX_YEAR (%d)", cfg.MinYear, cfg.MaxYear)
	}

	if span := cfg.MaxYear - cfg.MinYear; span < 0 || span >= maxYearSpan {
		return cfg, fmt.Errorf("year range %d-%d exceeds %d years", cfg.MinYear, cfg.MaxYear, maxYearSpan)
	}

	if loc := strings.TrimSpace(os.Getenv("PREDICTOR_LOCATION")); loc != "" {
		cfg.Location = loc
	}

	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Years lists the selectable years, oldest first.
func (c Config) Years() []int {
	years := make([]int, 0, c.MaxYear-c.MinYear+1)
	for y := c.MinYear; y <= c.MaxYear; y++ {
		years = append(years, y)
	}
	return years
}

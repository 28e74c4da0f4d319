// Package config sources process-level settings from the environment and
// validates game setups before play starts. Per-game options come from
// command line flags; the environment supplies operational defaults like
// the log level and a standing broker address.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"wargame/game"
)

// Config carries the process-level settings
type Config struct {
	LogLevel string
	Broker   string
	TraceDir string
}

var validate = validator.New()

// Load reads .env when present, then the environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msgf("no .env file, relying on the environment: %v", err)
	}
	cfg := &Config{
		LogLevel: os.Getenv("WARGAME_LOG_LEVEL"),
		Broker:   os.Getenv("WARGAME_BROKER"),
		TraceDir: os.Getenv("WARGAME_TRACE_DIR"),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg
}

// Validate checks a game setup against the option constraints
func Validate(opts *game.Options) error {
	if err := validate.Struct(opts); err != nil {
		return fmt.Errorf("invalid game options: %w", err)
	}
	return nil
}

package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config carries the environment overrides. Flags take precedence over env,
// env over built-in defaults.
type Config struct {
	StorePath      string        `env:"SUPTRACK_DB"`
	RemindInterval time.Duration `env:"SUPTRACK_REMIND_INTERVAL" envDefault:"1m"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.RemindInterval <= 0 {
		cfg.RemindInterval = time.Minute
	}
	return cfg, nil
}

package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	APIBaseURL     string        `env:"GAMESTORE_API_URL"`
	RequestTimeout time.Duration `env:"GAMESTORE_REQUEST_TIMEOUT"`
	DatabasePath   string        `env:"GAMESTORE_DB_PATH"`
}

// parseEnv overlays cfg with values from the environment. Unset variables
// leave the corresponding field alone.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
}

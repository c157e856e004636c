// Package config loads runtime settings for the GameStore client from, in
// increasing precedence: built-in defaults, a JSON file, environment
// variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the GameStore CLI.
//
// Fields:
//   - APIBaseURL: root of the backend REST API, including the /api prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: sqlite file holding the persisted session credentials.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3001/api"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "gamestore.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Folldix/GameStore-Frontend/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// are written as strings like "30s".
type JsonConfig struct {
	APIBaseURL     string `json:"api_base_url"`
	RequestTimeout string `json:"request_timeout"`
	DatabasePath   string `json:"database_path"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. No flag, no file read. Read or parse errors panic; the
// config chain runs before anything else and a broken config file should
// stop the program immediately.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}

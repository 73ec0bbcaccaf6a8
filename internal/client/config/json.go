package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/smarttraffic/internal/flagx"
	"github.com/dmitrijs2005/smarttraffic/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Zero values mean
// "not set" and leave the current Config field alone.
type JsonConfig struct {
	DatabasePath     string         `json:"database_path"`
	PasswordScheme   string         `json:"password_scheme"`
	DetectionDelay   timex.Duration `json:"detection_delay"`
	RouteSearchDelay timex.Duration `json:"route_search_delay"`
	LogLevel         string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.PasswordScheme != "" {
		cfg.PasswordScheme = jc.PasswordScheme
	}
	if jc.DetectionDelay.Duration != 0 {
		cfg.DetectionDelay = jc.DetectionDelay.Duration
	}
	if jc.RouteSearchDelay.Duration != 0 {
		cfg.RouteSearchDelay = jc.RouteSearchDelay.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}

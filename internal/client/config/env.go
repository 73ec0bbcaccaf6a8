package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays cfg with STM_* variables. Unset variables leave fields
// untouched; an unparsable value (e.g. a bad duration) panics.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}

package config

import "time"

// Config holds runtime settings for the SmartTraffic CLI.
type Config struct {
	DatabasePath     string        `env:"STM_DATABASE_PATH"`
	PasswordScheme   string        `env:"STM_PASSWORD_SCHEME"`
	DetectionDelay   time.Duration `env:"STM_DETECTION_DELAY"`
	RouteSearchDelay time.Duration `env:"STM_ROUTE_SEARCH_DELAY"`
	LogLevel         string        `env:"STM_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "traffic.db"
	c.PasswordScheme = "argon2id"
	c.DetectionDelay = 2 * time.Second
	c.RouteSearchDelay = 1500 * time.Millisecond
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, then JSON, environment and flags.
// Later sources take precedence. Malformed input panics.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

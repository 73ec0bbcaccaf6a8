// Package config loads runtime configuration for the SmartTraffic CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed STM_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   path to the SQLite database file
//	-p string   password scheme: plain, bcrypt or argon2id
//	-l string   log level: debug, info, warn or error
//
// # JSON schema
//
// Durations accept strings like "1.5s" or integer nanoseconds:
//
//	{
//	  "database_path": "traffic.db",
//	  "password_scheme": "argon2id",
//	  "detection_delay": "2s",
//	  "route_search_delay": "1.5s",
//	  "log_level": "info"
//	}
//
// # Environment
//
//	STM_DATABASE_PATH, STM_PASSWORD_SCHEME, STM_DETECTION_DELAY,
//	STM_ROUTE_SEARCH_DELAY, STM_LOG_LEVEL
package config

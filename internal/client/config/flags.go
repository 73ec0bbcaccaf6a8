package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/smarttraffic/internal/flagx"
)

// parseFlags populates cfg from -d, -p and -l. Other arguments are filtered
// out first so they don't trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-p", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the SQLite database file")
	fs.StringVar(&cfg.PasswordScheme, "p", cfg.PasswordScheme, "password scheme: plain, bcrypt or argon2id")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

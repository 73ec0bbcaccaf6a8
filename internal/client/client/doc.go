// Package client bootstraps the local SQLite database used by the CLI:
// it opens the file with the pure-Go modernc driver and applies the
// embedded goose migrations.
package client

package client

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/smarttraffic/internal/client/migrations"
	"github.com/dmitrijs2005/smarttraffic/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// DSN turns a database path into a modernc DSN. Write transactions take the
// lock up front (BEGIN IMMEDIATE) so two processes sharing the file cannot
// both read the users document before either writes it back. A path that
// already carries query parameters is used as-is.
func DSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_txlock=immediate&_pragma=busy_timeout(5000)"
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// InitDatabase opens the database at path, creating its directory if needed,
// and migrates it to the latest schema.
func InitDatabase(ctx context.Context, path string) (*sql.DB, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, fmt.Errorf("failed to prepare database directory: %w", err)
	}

	db, err := sql.Open("sqlite", DSN(path))
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

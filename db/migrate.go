package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationFiles embed.FS

// Migrate applies all pending migrations for the connection's dialect.
// Safe to call on every start.
func Migrate(ctx context.Context, c *Conn) error {
	slog.Info("running database migrations", "driver", c.Driver)

	var dialect goose.Dialect
	switch c.Driver {
	case "sqlite":
		dialect = goose.DialectSQLite3
	case "postgres":
		dialect = goose.DialectPostgres
	default:
		return fmt.Errorf("unsupported database driver %q", c.Driver)
	}

	fsys, err := fs.Sub(migrationFiles, "migrations/"+c.Driver)
	if err != nil {
		return fmt.Errorf("migration files: %w", err)
	}
	provider, err := goose.NewProvider(dialect, c.SQL, fsys)
	if err != nil {
		return fmt.Errorf("migration provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	for _, r := range results {
		slog.Debug("migration applied", "version", r.Source.Version, "duration", r.Duration)
	}
	slog.Info("database migrations complete", "applied", len(results))
	return nil
}

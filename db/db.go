package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/satheeshds/billing/config"
	_ "modernc.org/sqlite"
)

// Conn is an open database. SQL is always set; Pool is set for postgres.
type Conn struct {
	Driver string
	SQL    *sql.DB
	Pool   *pgxpool.Pool
}

// Close releases the connection.
func (c *Conn) Close() {
	if c.SQL != nil {
		c.SQL.Close()
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}

// Open connects to the configured database. For sqlite the file is created
// with WAL mode and foreign keys enabled; for postgres a pgx pool is opened
// and exposed through database/sql as well for migrations.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Conn, error) {
	switch cfg.Driver {
	case "sqlite":
		return openSQLite(ctx, cfg.Path)
	case "postgres":
		return openPostgres(ctx, cfg.URL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func openSQLite(ctx context.Context, dbPath string) (*Conn, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Verify connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	slog.Info("database connected", "driver", "sqlite", "path", dbPath)
	return &Conn{Driver: "sqlite", SQL: db}, nil
}

func openPostgres(ctx context.Context, url string) (*Conn, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	slog.Info("database connected", "driver", "postgres", "database", pool.Config().ConnConfig.Database)
	return &Conn{Driver: "postgres", SQL: stdlib.OpenDBFromPool(pool), Pool: pool}, nil
}

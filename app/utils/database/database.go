package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
	connectTimeout  = 10 * time.Second
)

// Connection wraps a database/sql handle. The HTTP path talks to Postgres
// through pgx; this handle exists for the migration runner, which wants
// plain database/sql transactions.
type Connection struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open connects and verifies the connection with a ping.
func Open(dsn string, logger *slog.Logger) (*Connection, error) {
	log := logger.With("component", "database")

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connection established")
	return &Connection{db: db, logger: log}, nil
}

// DB exposes the underlying handle.
func (c *Connection) DB() *sql.DB {
	return c.db
}

func (c *Connection) Close() error {
	c.logger.Info("closing database connection")
	return c.db.Close()
}

// Package db opens the news database and executes single statements against it.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"newsdesk/internal/config"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/observability/metrics"
)

// driverName is the database/sql driver registered by pgx/v5/stdlib.
var driverName = "pgx"

// Open connects to the database described by cfg and verifies the connection with a ping.
//
// The returned handle is pinned to a single connection: statements issued
// through it are serialized, never run in parallel on separate connections.
// The caller owns the handle and must Close it.
//
// On failure Open logs the error and returns (nil, err) where err wraps ErrConnect.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	logger := logging.FromContext(ctx)

	conn, err := sql.Open(driverName, cfg.DSN())
	if err != nil {
		return nil, connectFailed(logger, cfg, err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Verify connection
	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, connectFailed(logger, cfg, err)
	}

	metrics.RecordConnectAttempt(true)
	logger.Info("database connection established",
		slog.Any("database", cfg),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))
	return conn, nil
}

func connectFailed(logger *slog.Logger, cfg config.DatabaseConfig, err error) error {
	metrics.RecordConnectAttempt(false)
	logger.Error("database connection failed",
		slog.Any("database", cfg),
		slog.Any("error", err))
	return fmt.Errorf("%w: %w", ErrConnect, err)
}

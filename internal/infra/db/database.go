package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"reserva-api/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	dsn := cfg.BuildDSN()

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolCfg.MaxConns = 20
	poolCfg.MaxConnLifetime = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS tables (
		id BIGSERIAL PRIMARY KEY,
		capacity INT NOT NULL CHECK (capacity > 0),
		available BOOLEAN NOT NULL DEFAULT true
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL REFERENCES customers (id),
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		party_size INT,
		table_id BIGINT REFERENCES tables (id),
		status TEXT NOT NULL DEFAULT 'confirmed',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	// Backstop for the exclusive-table policy: at most one confirmed
	// reservation per (table, date, time) even if the slot lock is bypassed.
	`CREATE UNIQUE INDEX IF NOT EXISTS reservations_table_slot_uniq
		ON reservations (table_id, date, time)
		WHERE status = 'confirmed'`,
	`CREATE TABLE IF NOT EXISTS notification_jobs (
		id BIGSERIAL PRIMARY KEY,
		kind TEXT NOT NULL,
		topic TEXT NOT NULL,
		payload JSONB NOT NULL,
		run_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// SeedTables inserts the bootstrap table set when the relation is empty.
// Idempotent: a non-empty inventory is left untouched.
func SeedTables(ctx context.Context, pool *pgxpool.Pool, count int, capacity int) error {
	var existing int64
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM tables`).Scan(&existing); err != nil {
		return fmt.Errorf("failed to count tables: %w", err)
	}
	if existing > 0 {
		return nil
	}

	for i := 0; i < count; i++ {
		if _, err := pool.Exec(ctx, `INSERT INTO tables (capacity) VALUES ($1)`, capacity); err != nil {
			return fmt.Errorf("failed to seed tables: %w", err)
		}
	}

	slog.Info("seeded table inventory", "count", count, "capacity", capacity)
	return nil
}

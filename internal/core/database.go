package core

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied on every connect; all statements are idempotent.
// The created_at default makes the store the authority for Session.Timestamp.
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	task       TEXT        NOT NULL,
	duration   INTEGER     NOT NULL,
	type       TEXT        NOT NULL DEFAULT 'focus',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	date       TEXT        NOT NULL,
	user_id    TEXT        NOT NULL DEFAULT 'default_user'
);

CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON sessions (created_at DESC);

CREATE TABLE IF NOT EXISTS users (
	user_id     TEXT    PRIMARY KEY,
	name        TEXT    NOT NULL DEFAULT 'Guest',
	total_focus INTEGER NOT NULL DEFAULT 0,
	streak      INTEGER NOT NULL DEFAULT 0,
	level       INTEGER NOT NULL DEFAULT 1
);
`

// Connect establishes the pgx connection pool for the given database URL,
// verifies connectivity, and bootstraps the schema.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return pool, nil
}

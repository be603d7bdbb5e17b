// Package db provides PostgreSQL persistence for the snippet catalog.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// New creates a new database connection pool and verifies connectivity.
func New(ctx context.Context, databaseURL string) (*DB, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the database connection pool.
func (db *DB) Close() {
	db.pool.Close()
}

// Ping verifies the database connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Pool returns the underlying connection pool for advanced operations.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// Snippets returns a SnippetRepository.
func (db *DB) Snippets() *SnippetRepository {
	return &SnippetRepository{pool: db.pool}
}

// Migrate creates the schema if it does not exist.
func (db *DB) Migrate(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS snippets (
			id                text PRIMARY KEY,
			title             text NOT NULL,
			artist            text NOT NULL,
			moods             text[] NOT NULL,
			lyric_lines       text[] NOT NULL,
			timings           float8[] NOT NULL,
			audio_preview_url text NOT NULL,
			spotify_url       text NOT NULL,
			cover_image       text NOT NULL,
			duration          int NOT NULL DEFAULT 30,
			genre             text NOT NULL DEFAULT 'Pop',
			popularity        int NOT NULL DEFAULT 0 CHECK (popularity BETWEEN 0 AND 100),
			created_at        timestamptz NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_snippets_moods ON snippets USING GIN (moods);
		CREATE INDEX IF NOT EXISTS idx_snippets_popularity ON snippets (popularity DESC);
	`
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

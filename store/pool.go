// Package store is the relational persistence engine: a per-kind
// insert/update/load/remove dispatch over a shared connection pool, an
// edge table with a two-tag direction enum, and the GORM-backed locator
// projection the REST listing endpoint reads.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a pgx connection pool. Direct SQL access rather than an ORM
// is used here because every codec already knows its exact column list
// and the edge table's delete-then-stream rewrite is naturally
// expressed as a handful of statements per transaction.
type DB struct {
	pool *pgxpool.Pool
}

// Open connects to a PostgreSQL database and verifies the connection
// with a ping.
func Open(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("store: create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: ping database: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close releases the underlying connection pool.
func (db *DB) Close() {
	db.pool.Close()
}

// Pool returns the underlying pgx pool for callers that need the raw
// pool rather than a transaction (schema.Bootstrap does).
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// BeginTx starts a transaction. Each task owns its own transaction: a
// save commits at the end of its own task, and the graph factory uses
// one transaction for its edge-resolution queries while per-node field
// loads run in their own transactions on sibling workers.
func (db *DB) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db.pool.Begin(ctx)
}

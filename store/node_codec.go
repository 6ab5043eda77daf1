package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"reqgraph.dev/node"
)

// insertNodeAndEdges is the base codec every kind's Insert calls
// through to first: it writes the generic node(id, kind_name) row and
// streams the node's current up/down sets into node_associations.
func insertNodeAndEdges(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `INSERT INTO node (id, kind_name) VALUES ($1, $2)`,
		n.ID(), n.Kind().String()); err != nil {
		return fmt.Errorf("store: insert node row: %w", err)
	}
	return streamEdges(ctx, tx, n)
}

// updateNodeAndEdges is the base codec every kind's Update calls
// through to: it unconditionally deletes every node_associations row
// owned by this identifier and streams the current up/down sets back,
// so the store's edge set for a node always matches the in-memory view
// after any save.
func updateNodeAndEdges(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `UPDATE node SET kind_name = $2 WHERE id = $1`,
		n.ID(), n.Kind().String()); err != nil {
		return fmt.Errorf("store: update node row: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM node_associations WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: clear edges: %w", err)
	}
	return streamEdges(ctx, tx, n)
}

func streamEdges(ctx context.Context, tx pgx.Tx, n node.Node) error {
	for _, up := range n.Up() {
		if _, err := tx.Exec(ctx, `INSERT INTO node_associations (id, neighbor, direction) VALUES ($1, $2, 'up')`,
			n.ID(), up.ID()); err != nil {
			return fmt.Errorf("store: stream up edge: %w", err)
		}
	}
	for _, down := range n.Down() {
		if _, err := tx.Exec(ctx, `INSERT INTO node_associations (id, neighbor, direction) VALUES ($1, $2, 'down')`,
			n.ID(), down.ID()); err != nil {
			return fmt.Errorf("store: stream down edge: %w", err)
		}
	}
	return nil
}

// removeNodeAndEdges deletes edges where id = X OR neighbor = X, then
// the node row itself. The kind-specific row is the caller's own
// responsibility to delete before or after this.
func removeNodeAndEdges(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM node_associations WHERE id = $1 OR neighbor = $1`, id); err != nil {
		return fmt.Errorf("store: remove edges: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM node WHERE id = $1`, id); err != nil {
		return fmt.Errorf("store: remove node row: %w", err)
	}
	return nil
}

// Exists reports whether n's identifier already has a row in its own
// kind-specific table, which is how the save traversal chooses between
// Insert and Update.
func Exists(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	table := n.Kind().Table()
	var id uuid.UUID
	err := tx.QueryRow(ctx, fmt.Sprintf(`SELECT id FROM %s WHERE id = $1`, table), n.ID()).Scan(&id)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: existence check on %s: %w", table, err)
	}
	return true, nil
}

// KindOf looks up the stable kind name for an identifier. Used by the
// graph factory's first step when reconstructing a graph from a root
// id; returns ErrNotFound if the identifier has no node row.
func KindOf(ctx context.Context, tx pgx.Tx, id uuid.UUID) (string, error) {
	var kindName string
	err := tx.QueryRow(ctx, `SELECT kind_name FROM node WHERE id = $1`, id).Scan(&kindName)
	if err == pgx.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("store: kind lookup: %w", err)
	}
	return kindName, nil
}

// Neighbors returns every (neighbor, direction) pair recorded for id.
type Edge struct {
	Neighbor  uuid.UUID
	Direction string
}

func Neighbors(ctx context.Context, tx pgx.Tx, id uuid.UUID) ([]Edge, error) {
	rows, err := tx.Query(ctx, `SELECT neighbor, direction FROM node_associations WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("store: neighbor query: %w", err)
	}
	defer rows.Close()

	var edges []Edge
	for rows.Next() {
		var e Edge
		if err := rows.Scan(&e.Neighbor, &e.Direction); err != nil {
			return nil, fmt.Errorf("store: neighbor scan: %w", err)
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

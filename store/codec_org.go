package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"reqgraph.dev/node"
)

// plainCodec backs the neutral Node kind: the kind registry's fallback
// for unknown kind names, with no kind-specific table of its own.
type plainCodec struct{}

func (plainCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	return insertNodeAndEdges(ctx, tx, n)
}

func (plainCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	return updateNodeAndEdges(ctx, tx, n)
}

func (plainCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	return true, nil
}

func (plainCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	return removeNodeAndEdges(ctx, tx, n.ID())
}

type graphNodeCodec struct{}

func (graphNodeCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	g := n.(*node.GraphNode)
	_, err := tx.Exec(ctx, `INSERT INTO graph_node (id, title) VALUES ($1, $2)`, g.ID(), g.Title())
	return err
}

func (graphNodeCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	g := n.(*node.GraphNode)
	_, err := tx.Exec(ctx, `UPDATE graph_node SET title = $2 WHERE id = $1`, g.ID(), g.Title())
	return err
}

func (graphNodeCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	g := n.(*node.GraphNode)
	var title string
	err := tx.QueryRow(ctx, `SELECT title FROM graph_node WHERE id = $1`, g.ID()).Scan(&title)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load graph_node: %w", err)
	}
	g.SetTitle(title)
	return true, nil
}

func (graphNodeCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM graph_node WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove graph_node row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

type organizationCodec struct{}

func (organizationCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	o := n.(*node.Organization)
	_, err := tx.Exec(ctx, `INSERT INTO organization (id, locked, name) VALUES ($1, $2, $3)`,
		o.ID(), o.Locked(), o.Name())
	return err
}

func (organizationCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	o := n.(*node.Organization)
	_, err := tx.Exec(ctx, `UPDATE organization SET locked = $2, name = $3 WHERE id = $1`,
		o.ID(), o.Locked(), o.Name())
	return err
}

func (organizationCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	o := n.(*node.Organization)
	var locked bool
	var name string
	err := tx.QueryRow(ctx, `SELECT locked, name FROM organization WHERE id = $1`, o.ID()).Scan(&locked, &name)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load organization: %w", err)
	}
	o.SetLocked(locked)
	o.SetName(name)
	return true, nil
}

func (organizationCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM organization WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove organization row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

type projectCodec struct{}

func (projectCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	p := n.(*node.Project)
	_, err := tx.Exec(ctx, `INSERT INTO project (id, name, description) VALUES ($1, $2, $3)`,
		p.ID(), p.Name(), p.Description())
	return err
}

func (projectCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	p := n.(*node.Project)
	_, err := tx.Exec(ctx, `UPDATE project SET name = $2, description = $3 WHERE id = $1`,
		p.ID(), p.Name(), p.Description())
	return err
}

func (projectCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	p := n.(*node.Project)
	var name, description string
	err := tx.QueryRow(ctx, `SELECT name, description FROM project WHERE id = $1`, p.ID()).Scan(&name, &description)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load project: %w", err)
	}
	p.SetName(name)
	p.SetDescription(description)
	return true, nil
}

func (projectCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM project WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove project row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

type productCodec struct{}

func (productCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	p := n.(*node.Product)
	_, err := tx.Exec(ctx, `INSERT INTO product (id, title, description) VALUES ($1, $2, $3)`,
		p.ID(), p.Title(), p.Description())
	return err
}

func (productCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	p := n.(*node.Product)
	_, err := tx.Exec(ctx, `UPDATE product SET title = $2, description = $3 WHERE id = $1`,
		p.ID(), p.Title(), p.Description())
	return err
}

func (productCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	p := n.(*node.Product)
	var title, description string
	err := tx.QueryRow(ctx, `SELECT title, description FROM product WHERE id = $1`, p.ID()).Scan(&title, &description)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load product: %w", err)
	}
	// A freshly loaded node is never committed, so these setters cannot
	// fail; the commitable overlay itself is not part of the relational
	// schema, only of the JSON archive.
	_ = p.SetTitle(title)
	_ = p.SetDescription(description)
	return true, nil
}

func (productCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM product WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove product row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

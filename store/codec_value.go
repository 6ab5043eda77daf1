package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"reqgraph.dev/node"
)

type textCodec struct{}

func (textCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	t := n.(*node.Text)
	_, err := tx.Exec(ctx, `INSERT INTO text (id, text) VALUES ($1, $2)`, t.ID(), t.Text())
	return err
}

func (textCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	t := n.(*node.Text)
	_, err := tx.Exec(ctx, `UPDATE text SET text = $2 WHERE id = $1`, t.ID(), t.Text())
	return err
}

func (textCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	t := n.(*node.Text)
	var text string
	err := tx.QueryRow(ctx, `SELECT text FROM text WHERE id = $1`, t.ID()).Scan(&text)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load text: %w", err)
	}
	t.SetText(text)
	return true, nil
}

func (textCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM text WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove text row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

type completedCodec struct{}

func (completedCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	c := n.(*node.Completed)
	_, err := tx.Exec(ctx, `INSERT INTO completed (id, description) VALUES ($1, $2)`, c.ID(), c.Description())
	return err
}

func (completedCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	c := n.(*node.Completed)
	_, err := tx.Exec(ctx, `UPDATE completed SET description = $2 WHERE id = $1`, c.ID(), c.Description())
	return err
}

func (completedCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	c := n.(*node.Completed)
	var description string
	err := tx.QueryRow(ctx, `SELECT description FROM completed WHERE id = $1`, c.ID()).Scan(&description)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load completed: %w", err)
	}
	c.SetDescription(description)
	return true, nil
}

func (completedCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM completed WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove completed row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

type keyValueCodec struct{}

func (keyValueCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	k := n.(*node.KeyValue)
	_, err := tx.Exec(ctx, `INSERT INTO keyvalue (id, key, value) VALUES ($1, $2, $3)`, k.ID(), k.Key(), k.Value())
	return err
}

func (keyValueCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	k := n.(*node.KeyValue)
	_, err := tx.Exec(ctx, `UPDATE keyvalue SET key = $2, value = $3 WHERE id = $1`, k.ID(), k.Key(), k.Value())
	return err
}

func (keyValueCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	k := n.(*node.KeyValue)
	var key, value string
	err := tx.QueryRow(ctx, `SELECT key, value FROM keyvalue WHERE id = $1`, k.ID()).Scan(&key, &value)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load keyvalue: %w", err)
	}
	k.SetKey(key)
	k.SetValue(value)
	return true, nil
}

func (keyValueCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM keyvalue WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove keyvalue row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

type timeEstimateCodec struct{}

func (timeEstimateCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	t := n.(*node.TimeEstimate)
	_, err := tx.Exec(ctx, `INSERT INTO time_estimate (id, text, estimate, started, start) VALUES ($1, $2, $3, $4, $5)`,
		t.ID(), t.Text(), t.Estimate(), t.Started(), t.Start())
	return err
}

func (timeEstimateCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	t := n.(*node.TimeEstimate)
	_, err := tx.Exec(ctx, `UPDATE time_estimate SET text = $2, estimate = $3, started = $4, start = $5 WHERE id = $1`,
		t.ID(), t.Text(), t.Estimate(), t.Started(), t.Start())
	return err
}

func (timeEstimateCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	t := n.(*node.TimeEstimate)
	var text string
	var estimate int64
	var started bool
	var start time.Time
	err := tx.QueryRow(ctx, `SELECT text, estimate, started, start FROM time_estimate WHERE id = $1`, t.ID()).
		Scan(&text, &estimate, &started, &start)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load time_estimate: %w", err)
	}
	t.SetText(text)
	t.SetEstimate(estimate)
	t.SetStarted(started)
	t.SetStart(start)
	return true, nil
}

func (timeEstimateCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM time_estimate WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove time_estimate row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

type effortCodec struct{}

func (effortCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	e := n.(*node.Effort)
	_, err := tx.Exec(ctx, `INSERT INTO effort (id, text, effort) VALUES ($1, $2, $3)`, e.ID(), e.Text(), e.Effort())
	return err
}

func (effortCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	e := n.(*node.Effort)
	_, err := tx.Exec(ctx, `UPDATE effort SET text = $2, effort = $3 WHERE id = $1`, e.ID(), e.Text(), e.Effort())
	return err
}

func (effortCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	e := n.(*node.Effort)
	var text string
	var effort int64
	err := tx.QueryRow(ctx, `SELECT text, effort FROM effort WHERE id = $1`, e.ID()).Scan(&text, &effort)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load effort: %w", err)
	}
	e.SetText(text)
	e.SetEffort(effort)
	return true, nil
}

func (effortCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM effort WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove effort row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

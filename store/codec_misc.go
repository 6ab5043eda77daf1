package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"reqgraph.dev/node"
)

type eventCodec struct{}

func (eventCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	e := n.(*node.Event)
	_, err := tx.Exec(ctx, `INSERT INTO event (id, name, description) VALUES ($1, $2, $3)`,
		e.ID(), e.Name(), e.Description())
	return err
}

func (eventCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	e := n.(*node.Event)
	_, err := tx.Exec(ctx, `UPDATE event SET name = $2, description = $3 WHERE id = $1`,
		e.ID(), e.Name(), e.Description())
	return err
}

func (eventCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	e := n.(*node.Event)
	var name, description string
	err := tx.QueryRow(ctx, `SELECT name, description FROM event WHERE id = $1`, e.ID()).Scan(&name, &description)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load event: %w", err)
	}
	e.SetName(name)
	e.SetDescription(description)
	return true, nil
}

func (eventCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM event WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove event row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

type recurringTodoCodec struct{}

func (recurringTodoCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	r := n.(*node.RecurringTodo)
	_, err := tx.Exec(ctx, `INSERT INTO recurring_todo
		(id, description, created, recurring_interval, seconds_flag, dom_flag, doy_flag)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.ID(), r.Description(), r.Created(), r.RecurringInterval(), r.SecondsFlag(), r.DomFlag(), r.DoyFlag())
	return err
}

func (recurringTodoCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	r := n.(*node.RecurringTodo)
	_, err := tx.Exec(ctx, `UPDATE recurring_todo SET description = $2, created = $3, recurring_interval = $4,
		seconds_flag = $5, dom_flag = $6, doy_flag = $7 WHERE id = $1`,
		r.ID(), r.Description(), r.Created(), r.RecurringInterval(), r.SecondsFlag(), r.DomFlag(), r.DoyFlag())
	return err
}

func (recurringTodoCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	r := n.(*node.RecurringTodo)
	var description string
	var created time.Time
	var interval int64
	var secondsFlag, domFlag, doyFlag bool
	err := tx.QueryRow(ctx, `SELECT description, created, recurring_interval, seconds_flag, dom_flag, doy_flag
		FROM recurring_todo WHERE id = $1`, r.ID()).
		Scan(&description, &created, &interval, &secondsFlag, &domFlag, &doyFlag)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load recurring_todo: %w", err)
	}
	r.SetDescription(description)
	r.SetCreated(created)
	r.SetRecurringInterval(interval)
	r.SetSecondsFlag(secondsFlag)
	r.SetDomFlag(domFlag)
	r.SetDoyFlag(doyFlag)
	return true, nil
}

func (recurringTodoCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM recurring_todo WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove recurring_todo row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

type todoCodec struct{}

// spawnedFromColumn returns nil for a todo with no recurring origin, so
// the column stores SQL NULL rather than the zero UUID.
func spawnedFromColumn(id uuid.UUID) interface{} {
	if id == uuid.Nil {
		return nil
	}
	return id
}

func (todoCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	t := n.(*node.Todo)
	_, err := tx.Exec(ctx, `INSERT INTO todo (id, description, created, due, completed, date_completed, spawned_from)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID(), t.Description(), t.Created(), t.Due(), t.Completed(), t.DateCompleted(), spawnedFromColumn(t.SpawnedFrom()))
	return err
}

func (todoCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	t := n.(*node.Todo)
	_, err := tx.Exec(ctx, `UPDATE todo SET description = $2, created = $3, due = $4, completed = $5,
		date_completed = $6, spawned_from = $7 WHERE id = $1`,
		t.ID(), t.Description(), t.Created(), t.Due(), t.Completed(), t.DateCompleted(), spawnedFromColumn(t.SpawnedFrom()))
	return err
}

func (todoCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	t := n.(*node.Todo)
	var description string
	var created, due, dateCompleted time.Time
	var completed bool
	var spawnedFrom *uuid.UUID
	err := tx.QueryRow(ctx, `SELECT description, created, due, completed, date_completed, spawned_from
		FROM todo WHERE id = $1`, t.ID()).
		Scan(&description, &created, &due, &completed, &dateCompleted, &spawnedFrom)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load todo: %w", err)
	}
	t.SetDescription(description)
	t.SetCreated(created)
	t.SetDue(due)
	t.SetCompleted(completed)
	t.SetDateCompleted(dateCompleted)
	if spawnedFrom != nil {
		t.SetSpawnedFrom(*spawnedFrom)
	}
	return true, nil
}

func (todoCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM todo WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove todo row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

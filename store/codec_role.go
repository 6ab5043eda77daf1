package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"reqgraph.dev/node"
)

type roleCodec struct{}

func (roleCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	r := n.(*node.Role)
	_, err := tx.Exec(ctx, `INSERT INTO role (id, who) VALUES ($1, $2)`, r.ID(), r.Who())
	return err
}

func (roleCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	r := n.(*node.Role)
	_, err := tx.Exec(ctx, `UPDATE role SET who = $2 WHERE id = $1`, r.ID(), r.Who())
	return err
}

func (roleCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	r := n.(*node.Role)
	var who string
	err := tx.QueryRow(ctx, `SELECT who FROM role WHERE id = $1`, r.ID()).Scan(&who)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load role: %w", err)
	}
	r.SetWho(who)
	return true, nil
}

func (roleCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM role WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove role row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

type actorCodec struct{}

func (actorCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	a := n.(*node.Actor)
	_, err := tx.Exec(ctx, `INSERT INTO actor (id, actor) VALUES ($1, $2)`, a.ID(), a.Actor())
	return err
}

func (actorCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	a := n.(*node.Actor)
	_, err := tx.Exec(ctx, `UPDATE actor SET actor = $2 WHERE id = $1`, a.ID(), a.Actor())
	return err
}

func (actorCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	a := n.(*node.Actor)
	var actor string
	err := tx.QueryRow(ctx, `SELECT actor FROM actor WHERE id = $1`, a.ID()).Scan(&actor)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load actor: %w", err)
	}
	a.SetActor(actor)
	return true, nil
}

func (actorCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM actor WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove actor row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

type goalCodec struct{}

func (goalCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	g := n.(*node.Goal)
	_, err := tx.Exec(ctx, `INSERT INTO goal (id, action, outcome, context, target_date, target_date_confidence, alignment)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		g.ID(), g.Action(), g.Outcome(), g.Context(), g.TargetDate(), g.TargetDateConfidence(), g.Alignment())
	return err
}

func (goalCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	g := n.(*node.Goal)
	_, err := tx.Exec(ctx, `UPDATE goal SET action = $2, outcome = $3, context = $4,
		target_date = $5, target_date_confidence = $6, alignment = $7 WHERE id = $1`,
		g.ID(), g.Action(), g.Outcome(), g.Context(), g.TargetDate(), g.TargetDateConfidence(), g.Alignment())
	return err
}

func (goalCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	g := n.(*node.Goal)
	var action, outcome, goalContext, confidence, alignment string
	var targetDate time.Time
	err := tx.QueryRow(ctx, `SELECT action, outcome, context, target_date, target_date_confidence, alignment
		FROM goal WHERE id = $1`, g.ID()).
		Scan(&action, &outcome, &goalContext, &targetDate, &confidence, &alignment)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load goal: %w", err)
	}
	g.SetAction(action)
	g.SetOutcome(outcome)
	g.SetContext(goalContext)
	g.SetTargetDate(targetDate)
	g.SetTargetDateConfidence(confidence)
	g.SetAlignment(alignment)
	return true, nil
}

func (goalCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM goal WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove goal row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

type purposeCodec struct{}

func (purposeCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	p := n.(*node.Purpose)
	_, err := tx.Exec(ctx, `INSERT INTO purpose (id, description, deadline, deadline_confidence) VALUES ($1, $2, $3, $4)`,
		p.ID(), p.Description(), p.Deadline(), p.DeadlineConfidence())
	return err
}

func (purposeCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	p := n.(*node.Purpose)
	_, err := tx.Exec(ctx, `UPDATE purpose SET description = $2, deadline = $3, deadline_confidence = $4 WHERE id = $1`,
		p.ID(), p.Description(), p.Deadline(), p.DeadlineConfidence())
	return err
}

func (purposeCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	p := n.(*node.Purpose)
	var description, confidence string
	var deadline time.Time
	err := tx.QueryRow(ctx, `SELECT description, deadline, deadline_confidence FROM purpose WHERE id = $1`, p.ID()).
		Scan(&description, &deadline, &confidence)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load purpose: %w", err)
	}
	p.SetDescription(description)
	p.SetDeadline(deadline)
	p.SetDeadlineConfidence(confidence)
	return true, nil
}

func (purposeCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM purpose WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove purpose row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

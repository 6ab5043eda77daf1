package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"reqgraph.dev/node"
)

type requirementCodec struct{}

func (requirementCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	r := n.(*node.Requirement)
	_, err := tx.Exec(ctx, `INSERT INTO requirement (id, title, text, functional) VALUES ($1, $2, $3, $4)`,
		r.ID(), r.Title(), r.Text(), r.Functional())
	return err
}

func (requirementCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	r := n.(*node.Requirement)
	_, err := tx.Exec(ctx, `UPDATE requirement SET title = $2, text = $3, functional = $4 WHERE id = $1`,
		r.ID(), r.Title(), r.Text(), r.Functional())
	return err
}

func (requirementCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	r := n.(*node.Requirement)
	var title, text string
	var functional bool
	err := tx.QueryRow(ctx, `SELECT title, text, functional FROM requirement WHERE id = $1`, r.ID()).
		Scan(&title, &text, &functional)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load requirement: %w", err)
	}
	_ = r.SetTitle(title)
	_ = r.SetText(text)
	_ = r.SetFunctional(functional)
	return true, nil
}

func (requirementCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM requirement WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove requirement row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

type storyCodec struct{}

func (storyCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	s := n.(*node.Story)
	_, err := tx.Exec(ctx, `INSERT INTO story (id, title, goal, benefit) VALUES ($1, $2, $3, $4)`,
		s.ID(), s.Title(), s.Goal(), s.Benefit())
	return err
}

func (storyCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	s := n.(*node.Story)
	_, err := tx.Exec(ctx, `UPDATE story SET title = $2, goal = $3, benefit = $4 WHERE id = $1`,
		s.ID(), s.Title(), s.Goal(), s.Benefit())
	return err
}

func (storyCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	s := n.(*node.Story)
	var title, goal, benefit string
	err := tx.QueryRow(ctx, `SELECT title, goal, benefit FROM story WHERE id = $1`, s.ID()).
		Scan(&title, &goal, &benefit)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load story: %w", err)
	}
	_ = s.SetTitle(title)
	_ = s.SetGoal(goal)
	_ = s.SetBenefit(benefit)
	return true, nil
}

func (storyCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM story WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove story row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

type useCaseCodec struct{}

func (useCaseCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	u := n.(*node.UseCase)
	_, err := tx.Exec(ctx, `INSERT INTO use_case (id, name) VALUES ($1, $2)`, u.ID(), u.Name())
	return err
}

func (useCaseCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	u := n.(*node.UseCase)
	_, err := tx.Exec(ctx, `UPDATE use_case SET name = $2 WHERE id = $1`, u.ID(), u.Name())
	return err
}

func (useCaseCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	u := n.(*node.UseCase)
	var name string
	err := tx.QueryRow(ctx, `SELECT name FROM use_case WHERE id = $1`, u.ID()).Scan(&name)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load use_case: %w", err)
	}
	_ = u.SetName(name)
	return true, nil
}

func (useCaseCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM use_case WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove use_case row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

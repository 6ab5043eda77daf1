// Package loadgraph is the load-side counterpart to savetree: a
// Factory reconstructs a node tree from a root identifier by walking
// node_associations sequentially on its own transaction while
// dispatching each node's own scalar field load onto the shared
// worker pool, then blocks on a "done" channel, closed once every
// field load has returned.
package loadgraph

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"reqgraph.dev/kind"
	"reqgraph.dev/node"
	"reqgraph.dev/store"
	"reqgraph.dev/worker"
)

// Factory reconstructs graphs from a shared connection pool and a
// shared worker pool; both are long-lived and handed to every Load
// call.
type Factory struct {
	DB   *store.DB
	Pool *worker.Pool
}

func NewFactory(db *store.DB, pool *worker.Pool) *Factory {
	return &Factory{DB: db, Pool: pool}
}

// completion is the closed-channel "done" predicate Load blocks on:
// a fixed number of field loads must each call complete() once before
// Done() closes.
type completion struct {
	remaining int64
	done      chan struct{}
	once      sync.Once
}

func newCompletion(total int) *completion {
	c := &completion{remaining: int64(total), done: make(chan struct{})}
	if total == 0 {
		close(c.done)
	}
	return c
}

func (c *completion) complete() {
	if atomic.AddInt64(&c.remaining, -1) == 0 {
		c.once.Do(func() { close(c.done) })
	}
}

// Load is the synchronous façade the REST surface's GET /graph/:id
// blocks on: it returns the fully resolved root node, with every
// reachable node's links and scalar fields populated, or an error if
// rootID has no node row at all.
func (f *Factory) Load(ctx context.Context, rootID uuid.UUID) (node.Node, error) {
	tx, err := f.DB.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("loadgraph: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	arena := make(map[uuid.UUID]node.Node)
	allocate := func(id uuid.UUID) (node.Node, error) {
		if n, ok := arena[id]; ok {
			return n, nil
		}
		kindName, err := store.KindOf(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		k, _ := kind.FromName(kindName)
		n := node.New(k)
		if err := n.SetIdentifier(id.String()); err != nil {
			return nil, fmt.Errorf("loadgraph: %w", err)
		}
		arena[id] = n
		return n, nil
	}

	root, err := allocate(rootID)
	if err != nil {
		return nil, fmt.Errorf("loadgraph: load root %s: %w", rootID, err)
	}

	visited := map[uuid.UUID]bool{rootID: true}
	queue := []uuid.UUID{rootID}
	toLoad := []node.Node{root}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		owner := arena[id]

		edges, err := store.Neighbors(ctx, tx, id)
		if err != nil {
			return nil, fmt.Errorf("loadgraph: neighbors of %s: %w", id, err)
		}
		for _, e := range edges {
			neighbor, err := allocate(e.Neighbor)
			if errors.Is(err, store.ErrNotFound) {
				// The edge row outlived the node it pointed to; skip it
				// rather than fail the whole load.
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("loadgraph: allocate neighbor %s: %w", e.Neighbor, err)
			}
			switch e.Direction {
			case "down":
				owner.AddDown(neighbor)
			case "up":
				owner.AddUp(neighbor)
			}
			if !visited[e.Neighbor] {
				visited[e.Neighbor] = true
				queue = append(queue, e.Neighbor)
				toLoad = append(toLoad, neighbor)
			}
		}
	}

	done := newCompletion(len(toLoad))
	for _, n := range toLoad {
		f.Pool.Submit(&LoadNode{DB: f.DB, Node: n, done: done})
	}

	select {
	case <-done.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return root, nil
}

// LoadNode fills in one node's own kind-specific scalar fields. It
// never touches up/down links - those are already resolved by the
// factory's own sequential walk before this task is ever submitted.
type LoadNode struct {
	DB   *store.DB
	Node node.Node
	done *completion
}

func (t *LoadNode) Run(ctx context.Context, p *worker.Pool) {
	defer t.done.complete()

	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		log.Printf("loadgraph: begin tx for %s: %v", t.Node.ID(), err)
		return
	}
	defer tx.Rollback(ctx)

	if _, err := store.Load(ctx, tx, t.Node); err != nil {
		log.Printf("loadgraph: load %s: %v", t.Node.ID(), err)
	}
}

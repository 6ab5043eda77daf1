// Package savetree is the save-side traversal: one SaveNodes task per
// node in the reachable set, fanned out onto the shared worker pool
// and joined back together through a Signal a caller can block on.
package savetree

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"reqgraph.dev/node"
	"reqgraph.dev/store"
	"reqgraph.dev/worker"
)

// Signal is a small completion conjunction over an unbuffered channel:
// the Go rendering of "wait for every complete(id, node) call in a
// save to have fired." It closes its Done channel exactly once, the
// moment the last of a fixed number of expected completions arrives.
type Signal struct {
	remaining int64
	done      chan struct{}
	once      sync.Once
}

func newSignal(total int) *Signal {
	s := &Signal{remaining: int64(total), done: make(chan struct{})}
	if total == 0 {
		close(s.done)
	}
	return s
}

// Done returns a channel that closes once every task this signal was
// created for has completed.
func (s *Signal) Done() <-chan struct{} { return s.done }

func (s *Signal) complete() {
	if atomic.AddInt64(&s.remaining, -1) == 0 {
		s.once.Do(func() { close(s.done) })
	}
}

// SaveNodes persists exactly one node: an existence check against its
// own kind table decides Insert versus Update, the dirty flag is
// cleared immediately before the kind-specific write (not after, so a
// mutation racing the save is never silently dropped as
// already-clean), and edges are rewritten unconditionally by the
// codec either way.
type SaveNodes struct {
	DB     *store.DB
	Node   node.Node
	signal *Signal
}

func (t *SaveNodes) Run(ctx context.Context, p *worker.Pool) {
	defer t.signal.complete()

	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		log.Printf("savetree: begin tx for %s: %v", t.Node.ID(), err)
		return
	}
	defer tx.Rollback(ctx)

	exists, err := store.Exists(ctx, tx, t.Node)
	if err != nil {
		log.Printf("savetree: existence check for %s: %v", t.Node.ID(), err)
		return
	}

	t.Node.SetChanged(false)
	if exists {
		err = store.Update(ctx, tx, t.Node)
	} else {
		err = store.Insert(ctx, tx, t.Node)
	}
	if err != nil {
		log.Printf("savetree: save %s: %v", t.Node.ID(), err)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("savetree: commit %s: %v", t.Node.ID(), err)
	}
}

// SaveTree submits one SaveNodes task per node reachable from root
// (or just root itself, when saveThisNodeOnly is set) onto pool, and
// returns a Signal that closes once all of them have run. Edges to a
// neighbor that has not been saved yet under its own identifier are
// still written; that neighbor's row simply does not exist until it
// is saved in its own right, which is consistent with the traversal's
// no-concurrent-mutation assumption.
func SaveTree(pool *worker.Pool, db *store.DB, root node.Node, saveThisNodeOnly bool) *Signal {
	var targets []node.Node
	if saveThisNodeOnly {
		targets = []node.Node{root}
	} else {
		node.Traverse(root, func(n node.Node) {
			targets = append(targets, n)
		})
	}

	sig := newSignal(len(targets))
	for _, n := range targets {
		pool.Submit(&SaveNodes{DB: db, Node: n, signal: sig})
	}
	return sig
}

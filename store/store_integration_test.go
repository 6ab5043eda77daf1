package store

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"reqgraph.dev/kind"
	"reqgraph.dev/node"
	"reqgraph.dev/store/schema"
)

// newTestDB provisions a disposable PostgreSQL container, bootstraps
// the schema, and registers cleanup. No id cleanup between tests is
// needed since each test gets its own container rather than sharing
// one and relying on identifier uniqueness to avoid collisions.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:17"),
		postgres.WithDatabase("reqgraph"),
		postgres.WithUsername("reqgraph"),
		postgres.WithPassword("reqgraph"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, schema.Bootstrap(ctx, db.Pool()))
	return db
}

func TestInsertThenLoadRoundTripsScalarFields(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	org := node.NewOrganization()
	org.Init()
	org.SetName("GCSE,Inc")
	org.SetLocked(true)

	tx, err := db.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, Insert(ctx, tx, org))
	require.NoError(t, tx.Commit(ctx))

	loaded := node.NewOrganization()
	require.NoError(t, loaded.SetIdentifier(org.IDString()))

	tx, err = db.BeginTx(ctx)
	require.NoError(t, err)
	found, err := Load(ctx, tx, loaded)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	require.True(t, found)
	require.Equal(t, "GCSE,Inc", loaded.Name())
	require.True(t, loaded.Locked())
}

func TestEdgesMatchInMemoryViewAfterUpdate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	parent := node.NewOrganization()
	parent.Init()
	childA := node.NewProject()
	childA.Init()
	childB := node.NewProject()
	childB.Init()
	node.Connect(parent, childA)

	tx, err := db.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, Insert(ctx, tx, parent))
	require.NoError(t, Insert(ctx, tx, childA))
	require.NoError(t, Insert(ctx, tx, childB))
	require.NoError(t, tx.Commit(ctx))

	// Rewire: drop childA, add childB, then update. The stored edge set
	// must match the new in-memory view exactly, not the union of old
	// and new.
	parent2 := node.NewOrganization()
	require.NoError(t, parent2.SetIdentifier(parent.IDString()))
	*parent = node.Organization{}
	node.Connect(parent2, childB)

	tx, err = db.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, Update(ctx, tx, parent2))
	require.NoError(t, tx.Commit(ctx))

	tx, err = db.BeginTx(ctx)
	require.NoError(t, err)
	edges, err := Neighbors(ctx, tx, parent2.ID())
	require.NoError(t, tx.Commit(ctx))
	require.NoError(t, err)

	require.Len(t, edges, 1)
	require.Equal(t, childB.ID(), edges[0].Neighbor)
	require.Equal(t, "down", edges[0].Direction)
}

func TestInsertUnknownKindSurfacesErrUnknownKind(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	n := &fakeUnknownKindNode{Organization: *node.NewOrganization()}
	n.Init()

	tx, err := db.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	err = Insert(ctx, tx, n)
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestLoadUnknownKindIsSilentNoOp(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	n := &fakeUnknownKindNode{Organization: *node.NewOrganization()}
	n.Init()

	tx, err := db.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	found, err := Load(ctx, tx, n)
	require.NoError(t, err)
	require.False(t, found)
}

// fakeUnknownKindNode reports a kind the registry has never heard of,
// by embedding a real node for everything else Node requires.
type fakeUnknownKindNode struct {
	node.Organization
}

func (f *fakeUnknownKindNode) Kind() kind.Kind { return kind.Kind("NotRegistered") }

var _ pgx.Tx // keeps the pgx import in use; no other line of this file references it

package loadgraph

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"reqgraph.dev/node"
	"reqgraph.dev/savetree"
	"reqgraph.dev/store"
	"reqgraph.dev/store/schema"
	"reqgraph.dev/worker"
)

func newTestDB(t *testing.T) *store.DB {
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

	db, err := store.Open(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, schema.Bootstrap(ctx, db.Pool()))
	return db
}

func TestFactoryLoadRoundTripsOrgProjectProductChain(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	pool := worker.New(ctx, 4)
	defer pool.Shutdown()

	org := node.NewOrganization()
	org.Init()
	org.SetName("GCSE,Inc")

	proj := node.NewProject()
	proj.Init()
	proj.SetName("Graph Store")
	node.Connect(org, proj)

	product := node.NewProduct()
	product.Init()
	require.NoError(t, product.SetTitle("Requirements Graph"))
	node.Connect(proj, product)

	sig := savetree.SaveTree(pool, db, org, false)
	select {
	case <-sig.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("save never completed")
	}

	factory := NewFactory(db, pool)
	loaded, err := factory.Load(ctx, org.ID())
	require.NoError(t, err)

	gotOrg, ok := loaded.(*node.Organization)
	require.True(t, ok)
	require.Equal(t, "GCSE,Inc", gotOrg.Name())
	require.Len(t, gotOrg.Down(), 1)

	gotProj, ok := gotOrg.Down()[0].(*node.Project)
	require.True(t, ok)
	require.Equal(t, "Graph Store", gotProj.Name())
	require.Len(t, gotProj.Down(), 1)
	require.Len(t, gotProj.Up(), 1)

	gotProduct, ok := gotProj.Down()[0].(*node.Product)
	require.True(t, ok)
	require.Equal(t, "Requirements Graph", gotProduct.Title())
}

func TestFactoryLoadUnknownRootSurfacesError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	pool := worker.New(ctx, 2)
	defer pool.Shutdown()

	missing := node.NewOrganization()
	missing.Init()

	factory := NewFactory(db, pool)
	_, err := factory.Load(ctx, missing.ID())
	require.Error(t, err)
}

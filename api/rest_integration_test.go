package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
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

func newTestHandlers(t *testing.T) *Handlers {
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

	gdb, err := store.OpenGORM(connStr)
	require.NoError(t, err)

	pool := worker.New(ctx, 4)
	t.Cleanup(pool.Shutdown)

	return &Handlers{DB: db, GDB: gdb, Pool: pool, Saves: pool}
}

func TestGraphLifecycleOverHTTP(t *testing.T) {
	h := newTestHandlers(t)
	e := echo.New()

	root := node.NewGraphNode()
	root.Init()
	root.SetTitle("Acme Requirements")

	org := node.NewOrganization()
	org.Init()
	org.SetName("Acme")
	node.Connect(root, org)

	sig := savetree.SaveTree(h.Saves, h.DB, root, false)
	select {
	case <-sig.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("save never completed")
	}

	req := httptest.NewRequest(http.MethodGet, "/graph/"+root.ID().String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(root.ID().String())

	require.NoError(t, h.GetGraph(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Acme")

	listReq := httptest.NewRequest(http.MethodGet, "/graphs", nil)
	listRec := httptest.NewRecorder()
	listCtx := e.NewContext(listReq, listRec)
	require.NoError(t, h.ListGraphs(listCtx))
	require.Equal(t, http.StatusOK, listRec.Code)
	require.Contains(t, listRec.Body.String(), root.ID().String())
}

func TestGetGraphReturnsNotFoundForUnknownID(t *testing.T) {
	h := newTestHandlers(t)
	e := echo.New()

	missing := node.NewOrganization()
	missing.Init()

	req := httptest.NewRequest(http.MethodGet, "/graph/"+missing.ID().String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(missing.ID().String())

	err := h.GetGraph(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, httpErr.Code)
}

// Package api is the REST surface over the graph store: listing known
// graphs, fetching one fully resolved, and replacing one from an
// uploaded archive. Handlers are thin - they translate HTTP into calls
// on store, loadgraph, savetree and graphjson and translate the result
// back into a status code and a JSON body.
package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"reqgraph.dev/graphjson"
	"reqgraph.dev/loadgraph"
	"reqgraph.dev/savetree"
	"reqgraph.dev/store"
	"reqgraph.dev/worker"
)

// Handlers bundles the dependencies every graph route needs: the
// connection pool, the GORM handle the locator listing reads through,
// and the worker pool that both the save traversal and the graph
// factory's per-node field loads run on.
type Handlers struct {
	DB    *store.DB
	GDB   *gorm.DB
	Pool  *worker.Pool
	Saves *worker.Pool
}

// RegisterRoutes mounts the graph endpoints onto e.
func RegisterRoutes(e *echo.Echo, h *Handlers) {
	e.GET("/graphs", h.ListGraphs)
	e.GET("/graph/:id", h.GetGraph)
	e.POST("/graph/:id", h.SaveGraph)
}

// resourceURL builds the address a client dereferences to fetch one
// graph, honoring a reverse proxy's X-Forwarded-Proto over the scheme
// Echo itself observed on the socket.
func resourceURL(c echo.Context, id string) string {
	scheme := c.Scheme()
	if proto := c.Request().Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request().Host + "/graph/" + id
}

// ListGraphs answers GET /graphs with one locator record per known
// graph root.
func (h *Handlers) ListGraphs(c echo.Context) error {
	locators, err := store.Locators(h.GDB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "list graphs: "+err.Error())
	}

	out := make([]map[string]string, 0, len(locators))
	for _, l := range locators {
		out = append(out, map[string]string{
			"graphUuid":    l.GraphUUID.String(),
			"graphTitle":   l.GraphTitle,
			"graphAddress": resourceURL(c, l.GraphUUID.String()),
		})
	}
	return c.JSON(http.StatusOK, out)
}

// GetGraph answers GET /graph/:id by loading the full node tree rooted
// at id and serializing it with graphjson. The load is synchronous:
// the handler blocks until every field has been fetched, since a
// partial graph is not a useful response.
func (h *Handlers) GetGraph(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed graph id")
	}

	factory := loadgraph.NewFactory(h.DB, h.Pool)
	root, err := factory.Load(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "no such graph")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "load graph: "+err.Error())
	}

	doc, err := graphjson.Marshal(root)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "serialize graph: "+err.Error())
	}
	return c.JSONBlob(http.StatusOK, doc)
}

// SaveGraph answers POST /graph/:id: the request body is a graphjson
// archive, deserialized into a node tree and handed to the save
// traversal. The save itself runs on the shared worker pool; the
// handler returns as soon as the tree is queued rather than waiting on
// every write to land, matching the save side's own fire-and-forget
// contract.
func (h *Handlers) SaveGraph(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing graph id")
	}
	if _, err := uuid.Parse(id); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed graph id")
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "read body: "+err.Error())
	}

	root, err := graphjson.Unmarshal(body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed graph archive: "+err.Error())
	}

	savetree.SaveTree(h.Saves, h.DB, root, false)
	return c.String(http.StatusOK, "OK")
}

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetGraphRejectsMalformedID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/graph/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	h := &Handlers{}
	err := h.GetGraph(c)
	assert.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestSaveGraphRejectsMissingID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/graph/", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("")

	h := &Handlers{}
	err := h.SaveGraph(c)
	assert.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestSaveGraphRejectsMalformedArchive(t *testing.T) {
	e := echo.New()
	id := "3fa85f64-5717-4562-b3fc-2c963f66afa6"
	req := httptest.NewRequest(http.MethodPost, "/graph/"+id, strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	h := &Handlers{}
	err := h.SaveGraph(c)
	assert.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestResourceURLHonorsForwardedProto(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/graphs", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	req.Host = "graphs.example.com"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	got := resourceURL(c, "3fa85f64-5717-4562-b3fc-2c963f66afa6")
	assert.Equal(t, "https://graphs.example.com/graph/3fa85f64-5717-4562-b3fc-2c963f66afa6", got)
}

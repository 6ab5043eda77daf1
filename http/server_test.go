package http

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheckHandlerReportsHealthy(t *testing.T) {
	e := NewEchoServer(DefaultServerConfig())
	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := HealthCheckHandler("graphserver", "dev")
	assert.NoError(t, handler(c))
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestHealthCheckHandlerWithDetailsIncludesDetails(t *testing.T) {
	e := NewEchoServer(DefaultServerConfig())
	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := HealthCheckHandlerWithDetails("graphserver", "dev", func() map[string]interface{} {
		return map[string]interface{}{"workers": 4}
	})
	assert.NoError(t, handler(c))
	assert.Contains(t, rec.Body.String(), "workers")
}

func TestGetPortIntFallsBackOnInvalidInput(t *testing.T) {
	assert.Equal(t, 8080, GetPortInt("", 8080))
	assert.Equal(t, 8080, GetPortInt("not-a-port", 8080))
	assert.Equal(t, 9090, GetPortInt("9090", 8080))
}

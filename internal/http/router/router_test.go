package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"agrilink-fulfillment/internal/http/handlers"
	"agrilink-fulfillment/internal/http/router"
	testlog "agrilink-fulfillment/internal/testutil"
)

func newTestRouter() http.Handler {
	logger := testlog.New().Logger()
	return router.New(
		logger,
		handlers.New(logger),
		&handlers.CatalogHandler{},
		&handlers.CartHandler{},
		&handlers.OrderHandler{},
		&handlers.PaymentHandler{},
		&handlers.LogisticsHandler{},
	)
}

func TestNew_ServesPing(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message": "pong"}`, rr.Body.String())
}

func TestNew_ServesMetrics(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestNew_UnknownRouteIsJSON404(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error": "route not found"}`, rr.Body.String())
}

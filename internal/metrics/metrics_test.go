package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerExposesRegisteredCollectors(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.RequestsTotal.WithLabelValues("/api/health", "GET", "200").Inc()
	m.RateLimited.Inc()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/api/health",status="200"} 1`)
	assert.Contains(t, w.Body.String(), "http_rate_limited_total 1")
}

func TestNewDefaultIsIndependent(t *testing.T) {
	assert.NotPanics(t, func() {
		NewDefault()
		NewDefault()
	})
}

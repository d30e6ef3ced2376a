package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/farmchainx/farmchainx/internal/common/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_MiddlewareAndDomainCounters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(config.MetricsConfig{Namespace: "farmtest"})

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/crops/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/crops/7", nil))
	require.Equal(t, http.StatusOK, w.Code)

	m.UserRegistered("FARMER")
	m.LoginAttempt("success")
	m.CropCreated()
	m.OrderCreated(120.5)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(w.Body)
	out := string(body)

	assert.Contains(t, out, `farmtest_http_requests_total{method="GET",route="/api/crops/:id",status="200"} 1`)
	assert.Contains(t, out, `farmtest_user_registrations_total{role="FARMER"} 1`)
	assert.Contains(t, out, `farmtest_user_logins_total{result="success"} 1`)
	assert.Contains(t, out, "farmtest_crops_created_total 1")
	assert.Contains(t, out, "farmtest_orders_created_total 1")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.UserRegistered("CONSUMER")
		m.LoginAttempt("invalid_credentials")
		m.CropCreated()
		m.OrderCreated(1)
	})
}

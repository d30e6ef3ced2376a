package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/farmchainx/farmchainx/internal/common/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the API server collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry      *prometheus.Registry
	httpReqCnt    *prometheus.CounterVec
	httpDur       *prometheus.HistogramVec
	httpInfl      *prometheus.GaugeVec
	registrations *prometheus.CounterVec
	logins        *prometheus.CounterVec
	cropsCreated  prometheus.Counter
	ordersCreated prometheus.Counter
	orderAmount   prometheus.Histogram
}

func New(cfg config.MetricsConfig) *Metrics {
	ns := cfg.Namespace
	buckets := cfg.Buckets
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}

	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		registry:   r,
		httpReqCnt: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "http_requests_total"}, []string{"method", "route", "status"}),
		httpDur:    prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: ns, Name: "http_request_duration_seconds", Buckets: buckets}, []string{"method", "route", "status"}),
		httpInfl:   prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: ns, Name: "http_requests_inflight"}, []string{"route"}),

		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "user_registrations_total"}, []string{"role"}),
		logins:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "user_logins_total"}, []string{"result"}),
		cropsCreated:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: ns, Name: "crops_created_total"}),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{Namespace: ns, Name: "orders_created_total"}),
		orderAmount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "order_total_amount",
			Buckets:   []float64{10, 50, 100, 500, 1000, 5000, 10000},
		}),
	}
	r.MustRegister(m.httpReqCnt, m.httpDur, m.httpInfl)
	r.MustRegister(m.registrations, m.logins, m.cropsCreated, m.ordersCreated, m.orderAmount)
	return m
}

// UserRegistered counts a successful registration for role
func (m *Metrics) UserRegistered(role string) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(role).Inc()
}

// LoginAttempt counts a login by outcome, e.g. "success", "invalid_credentials"
func (m *Metrics) LoginAttempt(result string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(result).Inc()
}

func (m *Metrics) CropCreated() {
	if m == nil {
		return
	}
	m.cropsCreated.Inc()
}

func (m *Metrics) OrderCreated(totalAmount float64) {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
	m.orderAmount.Observe(totalAmount)
}

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpInfl.WithLabelValues(route).Inc()
		start := time.Now()
		c.Next()
		status := strconv.Itoa(c.Writer.Status())
		m.httpReqCnt.WithLabelValues(c.Request.Method, route, status).Inc()
		m.httpDur.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		m.httpInfl.WithLabelValues(route).Dec()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

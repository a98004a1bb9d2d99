package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	FundsCreated     prometheus.Counter
	MovementsApplied prometheus.Counter
	RequestDuration  *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		FundsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fundtrack_funds_created_total",
			Help: "Total number of funds created",
		}),
		MovementsApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fundtrack_movements_applied_total",
			Help: "Total number of net asset value movements applied",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fundtrack_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// ObserveRequest records one HTTP request observation.
func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	m.RequestDuration.WithLabelValues(method, route, status).Observe(seconds)
}

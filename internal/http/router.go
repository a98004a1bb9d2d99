// Package httpapi assembles the HTTP surface: the fund routes behind the
// shared middleware chain, plus the health and metrics endpoints.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	fundhandler "fundtrack/internal/fund/handler"
	"fundtrack/internal/platform/metrics"
	"fundtrack/internal/platform/middleware"
)

// HealthChecker reports whether a backing resource is reachable. The postgres
// client implements it; the memory store needs no check and passes nil.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// NewRouter wires all public endpoints.
func NewRouter(funds *fundhandler.Handler, logger *slog.Logger, m *metrics.Metrics, db HealthChecker) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)
	r.Use(middleware.Latency(m))

	funds.Register(r)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if db != nil {
			if err := db.Health(req.Context()); err != nil {
				logger.ErrorContext(req.Context(), "health check failed", "error", err)
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

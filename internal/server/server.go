// Package server exposes the Prometheus metrics endpoint and a health probe
// over HTTP. The server is optional and only started when a listen address is
// configured.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/fibmemo/internal/logging"
)

// ReadHeaderTimeout bounds how long a client may take to send request
// headers, protecting the metrics endpoint from slowloris-style clients.
const ReadHeaderTimeout = 5 * time.Second

// Server serves /metrics and /healthz on a dedicated listener.
type Server struct {
	httpServer *http.Server
	logger     logging.Logger

	requestsTotal  prometheus.Counter
	activeRequests prometheus.Gauge
}

// New creates a metrics server for the given address and registry.
//
// Parameters:
//   - addr: The listen address (e.g. "localhost:9090").
//   - registry: The Prometheus registry to expose. The server registers its
//     own request-tracking instruments into it.
//   - logger: The logger for server lifecycle events.
//
// Returns:
//   - *Server: The configured, not yet started server.
func New(addr string, registry *prometheus.Registry, logger logging.Logger) *Server {
	s := &Server{
		logger: logger,
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fibmemo_requests_total",
			Help: "Total number of HTTP requests served.",
		}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fibmemo_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
	}
	registry.MustRegister(s.requestsTotal, s.activeRequests)

	mux := http.NewServeMux()
	mux.Handle("/metrics", s.metricsMiddleware(
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP))
	mux.Handle("/healthz", s.metricsMiddleware(s.handleHealthz))

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	return s
}

// Start begins serving in a background goroutine. Listen errors other than
// graceful shutdown are logged, not returned: a broken metrics listener must
// not fail the batch.
func (s *Server) Start() {
	go func() {
		s.logger.Info("metrics server listening",
			logging.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server failed", err)
		}
	}()
}

// Shutdown gracefully stops the server.
//
// Parameters:
//   - ctx: The context bounding the shutdown.
//
// Returns:
//   - error: The shutdown error, if any.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// metricsMiddleware tracks request counts and in-flight requests around the
// next handler.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requestsTotal.Inc()
		s.activeRequests.Inc()
		defer s.activeRequests.Dec()
		next(w, r)
	})
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

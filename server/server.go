// Package server exposes the path-finding engine over HTTP using gin.
//
// Routes:
//
//	POST /v1/solve   solve one maze (SolveRequest → SolveResponse)
//	GET  /v1/health  liveness probe
//	GET  /metrics    Prometheus exposition
//
// A malformed maze yields 422; an unreachable goal is a normal 200 response
// with found=false.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/mazepath/batch"
)

// RequestIDHeader carries the request ID in and out.
const RequestIDHeader = "X-Request-ID"

const (
	requestIDKey = "request_id"
	serviceName  = "mazepath"
)

// Server wires the HTTP routes.
type Server struct {
	engine        *gin.Engine
	logger        *slog.Logger
	metrics       *batch.Metrics
	gatherer      prometheus.Gatherer
	maxExpansions int
	tracing       []otelgin.Option
	started       time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records every solve on m.
func WithMetrics(m *batch.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithGatherer selects what /metrics exposes. Default: prometheus.DefaultGatherer.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		if g != nil {
			s.gatherer = g
		}
	}
}

// WithMaxExpansions caps each search; 0 means unlimited.
func WithMaxExpansions(n int) Option {
	return func(s *Server) { s.maxExpansions = n }
}

// WithTracerProvider sets the provider for request spans. Default: the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) {
		if tp != nil {
			s.tracing = append(s.tracing, otelgin.WithTracerProvider(tp))
		}
	}
}

// New builds a Server. The gin mode is left to the caller (gin.SetMode).
func New(opts ...Option) *Server {
	s := &Server{
		logger:   slog.Default(),
		gatherer: prometheus.DefaultGatherer,
		started:  time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}

	e := gin.New()
	e.Use(gin.Recovery(), otelgin.Middleware(serviceName, s.tracing...), s.requestID())
	v1 := e.Group("/v1")
	v1.POST("/solve", s.handleSolve)
	v1.GET("/health", s.handleHealth)
	e.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	s.engine = e

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("server listening", slog.String("addr", addr))

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// requestID propagates X-Request-ID or assigns a fresh UUID.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// HealthResponse is returned by GET /v1/health.
type HealthResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime_seconds"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Uptime: time.Since(s.started).Seconds()})
}

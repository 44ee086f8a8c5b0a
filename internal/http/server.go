// Package http provides the API server wiring: router construction,
// middleware, health endpoints, and graceful shutdown.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/vaultgate/vaultgate/internal/metrics"
)

// Option configures optional server behavior.
type Option func(*Server)

// WithCORS enables CORS for the given comma-separated origins.
func WithCORS(enabled bool, allowOrigins string) Option {
	return func(s *Server) {
		s.corsEnabled = enabled
		s.corsAllowOrigins = allowOrigins
	}
}

// WithRateLimit throttles mutation endpoints per client IP.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		s.rateLimitRPS = rps
		s.rateLimitBurst = burst
	}
}

// WithHTTPMetrics records request metrics through the given meter provider.
func WithHTTPMetrics(meterProvider otelmetric.MeterProvider, namespace string) Option {
	return func(s *Server) {
		s.meterProvider = meterProvider
		s.metricsNamespace = namespace
	}
}

// WithRoutes registers application routes on the router. The mutating group
// passed to the registrar carries the rate limiter when one is configured.
func WithRoutes(registrar func(router *gin.Engine, mutations *gin.RouterGroup)) Option {
	return func(s *Server) {
		s.registrars = append(s.registrars, registrar)
	}
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	db     *sql.DB
	logger *slog.Logger

	corsEnabled      bool
	corsAllowOrigins string
	rateLimitRPS     float64
	rateLimitBurst   int
	meterProvider    otelmetric.MeterProvider
	metricsNamespace string
	registrars       []func(router *gin.Engine, mutations *gin.RouterGroup)
}

// NewServer creates a new API server. The database handle backs the readiness
// probe; a nil handle reports not ready.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// buildRouter assembles the gin engine with the middleware stack and routes.
func (s *Server) buildRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(s.corsEnabled, s.corsAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if s.meterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(s.meterProvider, s.metricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	mutations := router.Group("/")
	if s.rateLimitRPS > 0 {
		mutations.Use(RateLimitMiddleware(s.rateLimitRPS, s.rateLimitBurst, s.logger))
	}

	for _, registrar := range s.registrars {
		registrar(router, mutations)
	}

	return router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic, including a
// database ping.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}

	if s.db == nil {
		components["database"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Error("readiness database ping failed", slog.Any("error", err))
		components["database"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// GetHandler returns the fully built router, constructing it on first use.
// Exposed so tests can mount the server in httptest.
func (s *Server) GetHandler() http.Handler {
	if s.server.Handler == nil {
		s.server.Handler = s.buildRouter()
	}
	return s.server.Handler
}

// Start starts the API server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.GetHandler()

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

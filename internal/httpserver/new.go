package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"pedidos-rapidisimos/internal/assistant"
	"pedidos-rapidisimos/internal/middleware"
	"pedidos-rapidisimos/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared middlewares
	mw middleware.Middleware

	// Metrics
	gatherer prometheus.Gatherer

	// Assistant domain
	assistantUC assistant.UseCase
	readyFn     func() error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	RateLimitPerMin int

	// TrustedProxies lists the proxy IPs/CIDRs whose forwarding headers are
	// honoured. Empty means the client IP is always the TCP peer.
	TrustedProxies []string

	// Gatherer backs /metrics. Nil uses the default registry.
	Gatherer prometheus.Gatherer

	// Assistant domain
	AssistantUseCase assistant.UseCase

	// ReadyCheck backs /ready. Nil means always ready.
	ReadyCheck func() error
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.RateLimitPerMin}),
		gatherer:    gatherer,
		assistantUC: cfg.AssistantUseCase,
		readyFn:     cfg.ReadyCheck,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantUC == nil {
		return errors.New("assistant use case is required")
	}
	return nil
}

// Handler exposes the configured engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

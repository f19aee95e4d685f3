package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"pedidos-rapidisimos/config"
	_ "pedidos-rapidisimos/docs" // Swagger docs
	cluRepo "pedidos-rapidisimos/internal/assistant/repository/clu"
	"pedidos-rapidisimos/internal/assistant/usecase"
	"pedidos-rapidisimos/internal/httpserver"
	"pedidos-rapidisimos/internal/router"
	"pedidos-rapidisimos/pkg/clu"
	"pedidos-rapidisimos/pkg/log"
	"pedidos-rapidisimos/pkg/metrics"
)

// @title       Pedidos Rapidisimos API
// @description Conversational front-end for the Pedidos Rapidisimos food ordering CLU project.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Pedidos Rapidisimos...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// 4. Assistant domain
	analyzer := cluRepo.New(logger, clu.Config{
		Endpoint:       cfg.NLU.Endpoint,
		APIKey:         cfg.NLU.APIKey,
		ProjectName:    cfg.NLU.ProjectName,
		DeploymentName: cfg.NLU.DeploymentName,
		Language:       cfg.NLU.Language,
		APIVersion:     cfg.NLU.APIVersion,
		HTTPClient:     &http.Client{Timeout: cfg.NLU.Timeout},
	})
	if cfgErr := analyzer.ConfigErr(); cfgErr != nil {
		logger.Warnf(ctx, "Language service not configured, queries will fail until it is: %v", cfgErr)
	} else {
		logger.Infof(ctx, "Language service: %s/%s", cfg.NLU.ProjectName, cfg.NLU.DeploymentName)
	}

	assistantUC := usecase.New(logger, analyzer, router.New(), m)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		RateLimitPerMin:  cfg.RateLimit.PerMin,
		TrustedProxies:   cfg.HTTPServer.TrustedProxies,
		Gatherer:         registry,
		AssistantUseCase: assistantUC,
		ReadyCheck:       analyzer.ConfigErr,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskparse/config"
	_ "taskparse/docs" // Swagger docs
	"taskparse/internal/command/usecase"
	"taskparse/internal/extraction"
	"taskparse/internal/httpserver"
	"taskparse/internal/middleware"
	"taskparse/pkg/log"
	"taskparse/pkg/metrics"
)

// @title       Task Command Parser API
// @description Turns English and Greek free-text commands into structured task operations.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting task command parser...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.NLP.Timezone)

	// 3. Parser
	processor, err := extraction.Load(cfg.NLP.LexiconPath, cfg.NLP.Timezone)
	if err != nil {
		logger.Error(ctx, "Failed to build parser: ", err)
		os.Exit(1)
	}
	if cfg.NLP.LexiconPath != "" {
		logger.Infof(ctx, "Lexicon loaded from %s", cfg.NLP.LexiconPath)
	}

	// 4. Command domain
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.NewMetrics()
	}
	commandUC := usecase.New(logger, processor, m, usecase.Config{
		MaxTextLength:    cfg.NLP.MaxTextLength,
		MaxBatchSize:     cfg.NLP.MaxBatchSize,
		BatchConcurrency: cfg.NLP.BatchConcurrency,
	})

	mw := middleware.New(logger, m, middleware.RateLimitConfig{
		Enabled:        cfg.RateLimit.Enabled,
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		Middleware:      mw,
		MetricsEnabled:  cfg.Metrics.Enabled,
		CommandUseCase:  commandUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpadapter "banca-insights/internal/adapter/http"
	"banca-insights/internal/adapter/memory"
	"banca-insights/internal/adapter/usecase"
	"banca-insights/internal/config"
	"banca-insights/internal/dataset"
)

// main is the entry point of the analytics service. It loads
// configuration, synthesizes the two source tables from the configured
// seed, wires the in-memory repository and the analytics service, then
// starts the HTTP server. On receiving a termination signal it
// gracefully shuts down the server.
func main() {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Both tables are generated once and held immutable for the process
	// lifetime; every request reads them through the repository port.
	customers, metrics := dataset.Generate(cfg.Dataset.Seed, cfg.Dataset.Customers)
	logger.Info("dataset generated",
		slog.Int("customers", len(customers)),
		slog.Int("campaign_rows", len(metrics)),
		slog.Int64("seed", cfg.Dataset.Seed),
	)

	repo := memory.NewDatasetRepository(customers, metrics)
	svc := usecase.NewAnalyticsService(repo)

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// Threat service intake server — accepts diagram uploads, manages the
// analysis queue, and serves results over HTTP.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/stridesec/threatmodel/pkg/analyzer"
	"github.com/stridesec/threatmodel/pkg/api"
	"github.com/stridesec/threatmodel/pkg/config"
	"github.com/stridesec/threatmodel/pkg/database"
	"github.com/stridesec/threatmodel/pkg/imagestore"
	"github.com/stridesec/threatmodel/pkg/queue"
	"github.com/stridesec/threatmodel/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting threat service",
		"http_port", httpPort,
		"workers", cfg.Queue.WorkerCount,
		"analyzer_url", cfg.AnalyzerURL)

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	store, err := imagestore.New(cfg.Upload.Dir, cfg.Upload.AllowedTypes)
	if err != nil {
		slog.Error("Failed to initialize image store", "dir", cfg.Upload.Dir, "error", err)
		os.Exit(1)
	}

	service := services.NewAnalysisService(dbClient.Client, store, cfg.Upload.MaxSizeBytes())

	// The analyzer call budget matches the job timeout; the worker context
	// expires at the same time anyway.
	analyzerClient := analyzer.New(cfg.AnalyzerURL, cfg.Queue.JobTimeout)
	executor := queue.NewAnalysisExecutor(store, service, analyzerClient)

	workerPool := queue.NewWorkerPool(dbClient.Client, cfg.Queue, service, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	httpServer := api.NewServer(cfg, dbClient, service, workerPool)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Wait for active jobs to finish, bounded by the shutdown budget.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — running analyses stay RUNNING until retried")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

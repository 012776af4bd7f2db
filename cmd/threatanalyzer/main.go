// Threat analyzer server — runs the diagram/STRIDE/DREAD pipeline over
// LLM providers and exposes it as a synchronous HTTP endpoint.
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

	"github.com/stridesec/threatmodel/pkg/agents"
	"github.com/stridesec/threatmodel/pkg/analyzerapi"
	"github.com/stridesec/threatmodel/pkg/cache"
	"github.com/stridesec/threatmodel/pkg/config"
	"github.com/stridesec/threatmodel/pkg/llm"
	"github.com/stridesec/threatmodel/pkg/pipeline"
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

	httpPort := getEnv("HTTP_PORT", "8001")

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting threat analyzer",
		"http_port", httpPort,
		"primary_model", cfg.LLM.PrimaryModel,
		"fallback_model", cfg.LLM.FallbackModel,
		"guardrail_enabled", cfg.Guardrail.Enabled)

	var backend cache.Backend = cache.NoOp{}
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedis(cfg.RedisURL)
		if err != nil {
			slog.Error("Failed to initialize Redis cache", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisCache.Close(); err != nil {
				slog.Error("Error closing Redis client", "error", err)
			}
		}()
		backend = redisCache
		slog.Info("LLM result cache enabled")
	}

	// Provider order is the fallback order: Gemini first, OpenAI second.
	deps := agents.Deps{
		Providers: []llm.Provider{llm.NewGemini(cfg.LLM), llm.NewOpenAI(cfg.LLM)},
		Cache:     backend,
		CacheTTL:  cfg.CacheTTL,
	}

	runner := pipeline.NewFromDeps(deps, cfg.Guardrail.Enabled, cfg.Guardrail.Threshold)
	httpServer := analyzerapi.NewServer(cfg, runner)

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

	// In-flight analyses get the remaining job budget to finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

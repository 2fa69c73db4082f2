package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/reviewpulse/reviewpulse/config"
	"github.com/reviewpulse/reviewpulse/internal/db"
	"github.com/reviewpulse/reviewpulse/internal/logging"
	"github.com/reviewpulse/reviewpulse/internal/suggestions"
)

// Periodically regenerates improvement suggestions from the accumulated
// review analytics and prunes dismissed or implemented ones past the
// retention window.
func main() {
	config.LoadEnv(os.Getenv("APP_ENV"))
	logging.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("[Suggester] Shutdown signal received")
		cancel()
	}()

	if err := db.InitDB(); err != nil {
		slog.Error("[Suggester] Failed to connect to Postgres",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.CloseDB()

	if err := db.EnsureSchema(ctx); err != nil {
		slog.Error("[Suggester] Failed to ensure schema",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	windowDays := envInt("SUGGESTION_WINDOW_DAYS", 30)
	retentionDays := envInt("SUGGESTION_RETENTION_DAYS", 90)
	interval := time.Duration(envInt("SUGGESTION_INTERVAL_MINUTES", 60)) * time.Minute

	engine := suggestions.NewEngine(db.AnalyticsStore{})

	slog.Info("[Suggester] Starting suggestion loop",
		slog.Int("window_days", windowDays),
		slog.Int("retention_days", retentionDays),
		slog.Duration("interval", interval))

	runOnce(ctx, engine, windowDays, retentionDays)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("[Suggester] Stopping")
			return
		case <-ticker.C:
			runOnce(ctx, engine, windowDays, retentionDays)
		}
	}
}

func runOnce(ctx context.Context, engine *suggestions.Engine, windowDays, retentionDays int) {
	generated, err := engine.GenerateSuggestions(ctx, nil, windowDays)
	if err != nil {
		slog.Error("[Suggester] Failed to generate suggestions",
			slog.String("error", err.Error()))
		return
	}

	saved, err := db.UpsertSuggestions(ctx, generated)
	if err != nil {
		slog.Error("[Suggester] Failed to save suggestions",
			slog.String("error", err.Error()))
		return
	}

	purged, err := db.PurgeSuggestions(ctx, retentionDays)
	if err != nil {
		slog.Error("[Suggester] Failed to purge old suggestions",
			slog.String("error", err.Error()))
	}

	slog.Info("[Suggester] Suggestion run complete",
		slog.Int("generated", len(generated)),
		slog.Int("saved", saved),
		slog.Int64("purged", purged))
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
		slog.Warn("[Suggester] Invalid value for env var, using default",
			slog.String("key", key),
			slog.Int("default", fallback))
	}
	return fallback
}

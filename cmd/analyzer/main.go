package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reviewpulse/reviewpulse/config"
	"github.com/reviewpulse/reviewpulse/internal/clients"
	"github.com/reviewpulse/reviewpulse/internal/clients/kafka_client"
	"github.com/reviewpulse/reviewpulse/internal/consumers"
	"github.com/reviewpulse/reviewpulse/internal/db"
	"github.com/reviewpulse/reviewpulse/internal/logging"
	"github.com/reviewpulse/reviewpulse/internal/sentiment"
)

func main() {
	config.LoadEnv(os.Getenv("APP_ENV"))
	logging.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		slog.Warn("[Main] Shutdown signal received")
		cancel()
	}()

	if err := db.InitDB(); err != nil {
		slog.Error("[Main] Failed to connect to PostgreSQL",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.CloseDB()

	if err := db.EnsureSchema(ctx); err != nil {
		slog.Error("[Main] Failed to ensure schema",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	clients.InitValkey()
	defer clients.CloseValkey()
	db.InitDynamoDB()

	cfg := kafka_client.GetKafkaConfig()
	for {
		err := kafka_client.InitProducer(cfg)
		if err == nil {
			break
		}
		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer kafka_client.CloseProducer()

	modelsDir := config.GetEnv("SENTIMENT_MODELS_DIR", "./models")
	analyzer := sentiment.NewAnalyzer(sentiment.NewModelScorer(modelsDir))

	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_RAW_REVIEWS, consumers.NewReviewConsumer(analyzer))
	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_REVIEW_RESULTS, consumers.StartResultsConsumer)

	if err := kafka_client.StartConsumer(ctx, cfg); err != nil {
		slog.Error("[Main] Failed to start consumer",
			slog.String("error", err.Error()))
	}
}

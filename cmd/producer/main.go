package main

import (
	"bufio"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/reviewpulse/reviewpulse/config"
	"github.com/reviewpulse/reviewpulse/internal/clients/kafka_client"
	"github.com/reviewpulse/reviewpulse/internal/logging"
	"github.com/reviewpulse/reviewpulse/internal/models"
	"github.com/reviewpulse/reviewpulse/internal/utils"
)

// Reads newline-delimited JSON reviews from REVIEWS_FILE (stdin when
// unset) and publishes them in batches to the raw-reviews topic.
func main() {
	config.LoadEnv(os.Getenv("APP_ENV"))
	logging.InitLogger()

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

	input := os.Stdin
	if path := os.Getenv("REVIEWS_FILE"); path != "" {
		file, err := os.Open(path)
		if err != nil {
			slog.Error("[Producer] Failed to open reviews file",
				slog.String("path", path),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer file.Close()
		input = file
	}

	published := 0
	var batch []models.ReviewInput

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var review models.ReviewInput
		if err := utils.DeserializeFromJSON(line, &review); err != nil {
			continue
		}
		if review.ReviewID == "" {
			review.ReviewID = uuid.NewString()
		}

		batch = append(batch, review)
		if len(batch) >= kafka_client.BATCH_SIZE {
			published += publishBatch(batch)
			batch = nil
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Error("[Producer] Failed reading input",
			slog.String("error", err.Error()))
	}
	if len(batch) > 0 {
		published += publishBatch(batch)
	}

	slog.Info("[Producer] Finished publishing reviews",
		slog.Int("published", published))
}

func publishBatch(batch []models.ReviewInput) int {
	err := kafka_client.PublishToKafka(kafka_client.KAFKA_TOPIC_RAW_REVIEWS, batch[0].ReviewID, batch)
	if err != nil {
		slog.Error("[Producer] Failed to publish batch",
			slog.Int("batch_size", len(batch)),
			slog.String("error", err.Error()))
		return 0
	}
	return len(batch)
}

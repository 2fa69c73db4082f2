package consumers

import (
	"context"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/reviewpulse/reviewpulse/internal/clients/kafka_client"
	"github.com/reviewpulse/reviewpulse/internal/db"
	"github.com/reviewpulse/reviewpulse/internal/models"
	"github.com/reviewpulse/reviewpulse/internal/utils"
)

var archiveBuffer = utils.NewBatchBuffer[models.AnalyzedReview]()

// StartResultsConsumer persists scored reviews: each result lands as a
// review row plus a daily-stat increment in Postgres, and batches flow
// to the DynamoDB archive. Persistence failures are logged per item and
// never stop the consumer; the scoring already succeeded upstream.
func StartResultsConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	slog.Info("[ResultsConsumer] Listening for analysis results")

	ticker := time.NewTicker(utils.BATCH_TIMEOUT)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[ResultsConsumer] Consumer shutting down...")
			flushArchive(ctx)
			return
		case <-ticker.C:
			flushArchive(ctx)
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var results []models.AnalyzedReview
			if err := utils.DeserializeFromJSON(msg.Value, &results); err != nil {
				utils.HandleConsumerError(err)
				continue
			}
			if len(results) == 0 {
				continue
			}

			utils.TrackMessage(results[0].ReviewID, msg)

			for _, review := range results {
				if review.Result.IsError() {
					// Empty-input results carry nothing worth storing.
					continue
				}

				storeResult(ctx, review)
				archiveBuffer.Add(review)
			}

			if archiveBuffer.Size() >= utils.BATCH_SIZE {
				flushArchive(ctx)
			}

			if tracked, found := utils.GetMessageForReview(results[0].ReviewID); found {
				if err := committer.Commit(tracked); err != nil {
					slog.Warn("[ResultsConsumer] Failed to commit offset",
						slog.String("error", err.Error()))
				}
			}
		}
	}
}

func storeResult(ctx context.Context, review models.AnalyzedReview) {
	if _, err := db.InsertReview(ctx, review.Result, review.Source); err != nil {
		slog.Error("[ResultsConsumer] Failed to persist review",
			slog.String("review_id", review.ReviewID),
			slog.String("error", err.Error()))
		return
	}

	err := db.IncrementDailyStat(ctx, review.Result.Timestamp, review.Result.Sentiment, review.Result.Confidence)
	if err != nil {
		slog.Error("[ResultsConsumer] Failed to update daily stats",
			slog.String("review_id", review.ReviewID),
			slog.String("error", err.Error()))
	}
}

func flushArchive(ctx context.Context) {
	batch := archiveBuffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	var err error
	for i := 0; i < 3; i++ {
		err = db.BatchArchiveResults(ctx, batch)
		if err == nil {
			return
		}
		slog.Error("[ResultsConsumer] Failed to archive results",
			slog.String("error", err.Error()),
			slog.Int("attempt", i+1))
	}
}

package consumers

import (
	"context"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/reviewpulse/reviewpulse/internal/clients"
	"github.com/reviewpulse/reviewpulse/internal/clients/kafka_client"
	"github.com/reviewpulse/reviewpulse/internal/models"
	"github.com/reviewpulse/reviewpulse/internal/sentiment"
	"github.com/reviewpulse/reviewpulse/internal/utils"
)

// Sources that submit markdown-formatted feedback; their text gets
// flattened to plain text before scoring.
var markdownSources = map[string]bool{
	"reddit": true,
	"forum":  true,
	"github": true,
}

// NewReviewConsumer scores batches from the raw-reviews topic with the
// given analyzer and publishes the results downstream. Reviews already
// marked processed in valkey are skipped, so redelivered messages do
// not double-count daily stats.
func NewReviewConsumer(analyzer *sentiment.Analyzer) func(context.Context, *kafka.Consumer) {
	return func(ctx context.Context, consumer *kafka.Consumer) {
		iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
		committer := kafka_client.NewCommitHandler(ctx, consumer)

		slog.Info("[ReviewConsumer] Listening for raw reviews")

		for {
			select {
			case <-ctx.Done():
				slog.Warn("[ReviewConsumer] Consumer shutting down...")
				return
			default:
				msg, err := iterator.Next()
				if err != nil {
					utils.HandleConsumerError(err)
					continue
				}

				var reviews []models.ReviewInput
				if err := utils.DeserializeFromJSON(msg.Value, &reviews); err != nil {
					utils.HandleConsumerError(err)
					continue
				}
				if len(reviews) == 0 {
					continue
				}

				utils.TrackMessage(reviews[0].ReviewID, msg)

				pending := filterProcessed(ctx, reviews)
				if len(pending) == 0 {
					if tracked, found := utils.GetMessageForReview(reviews[0].ReviewID); found {
						if err := committer.Commit(tracked); err != nil {
							slog.Warn("[ReviewConsumer] Failed to commit offset",
								slog.String("error", err.Error()))
						}
					}
					continue
				}

				texts := make([]string, len(pending))
				for i, review := range pending {
					text := review.Text
					if markdownSources[review.Source] {
						text = sentiment.FlattenMarkdown(text)
					}
					texts[i] = text
				}

				results := analyzer.AnalyzeBatch(texts)

				analyzed := make([]models.AnalyzedReview, len(pending))
				for i, review := range pending {
					analyzed[i] = models.AnalyzedReview{
						ReviewInput: review,
						Result:      results[i],
					}
				}

				publishResults(ctx, committer, reviews[0].ReviewID, analyzed)
			}
		}
	}
}

func filterProcessed(ctx context.Context, reviews []models.ReviewInput) []models.ReviewInput {
	valkeyClient := clients.GetValkeyClient()

	pending := make([]models.ReviewInput, 0, len(reviews))
	for _, review := range reviews {
		if valkeyClient.IsReviewProcessed(ctx, review.ReviewID) {
			slog.Info("[ReviewConsumer] Skipping already-processed review",
				slog.String("review_id", review.ReviewID))
			continue
		}
		pending = append(pending, review)
	}
	return pending
}

func publishResults(ctx context.Context, committer *kafka_client.KafkaCommitHandler, trackedID string, analyzed []models.AnalyzedReview) {
	var err error
	for i := 0; i < 3; i++ {
		err = kafka_client.PublishToKafka(kafka_client.KAFKA_TOPIC_REVIEW_RESULTS, analyzed[0].ReviewID, analyzed)
		if err == nil {
			break
		}
		slog.Warn("[ReviewConsumer] Batch publishing failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		slog.Error("[ReviewConsumer] Dropping batch after publish retries",
			slog.Int("batch_size", len(analyzed)))
		return
	}

	valkeyClient := clients.GetValkeyClient()
	for _, review := range analyzed {
		if err := valkeyClient.MarkReviewProcessed(ctx, review.ReviewID); err != nil {
			slog.Warn("[ReviewConsumer] Failed to mark review processed",
				slog.String("review_id", review.ReviewID),
				slog.String("error", err.Error()))
		}
	}

	if msg, found := utils.GetMessageForReview(trackedID); found {
		if err := committer.Commit(msg); err != nil {
			slog.Warn("[ReviewConsumer] Failed to commit offset",
				slog.String("error", err.Error()))
		}
	}
}

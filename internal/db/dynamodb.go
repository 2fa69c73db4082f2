package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/reviewpulse/reviewpulse/internal/clients"
	"github.com/reviewpulse/reviewpulse/internal/models"
)

const REVIEW_ARCHIVE_TABLE_NAME = "ReviewAnalysisArchive"

var dbClient *dynamodb.Client

func InitDynamoDB() {
	dbClient = clients.GetDynamoDBClient()
}

// BatchArchiveResults writes full analysis results to the hot archive
// table with a 24h TTL. Unprocessed items retry with backoff; failures
// here never block the relational write path.
func BatchArchiveResults(ctx context.Context, reviews []models.AnalyzedReview) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	const maxBatchSize = 25
	for i := 0; i < len(reviews); i += maxBatchSize {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:
			end := i + maxBatchSize
			if end > len(reviews) {
				end = len(reviews)
			}

			writeRequests := make([]types.WriteRequest, 0, maxBatchSize)
			for _, review := range reviews[i:end] {
				writeRequests = append(writeRequests, types.WriteRequest{
					PutRequest: &types.PutRequest{
						Item: analyzedReviewToItem(review),
					},
				})
			}

			out, err := dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					REVIEW_ARCHIVE_TABLE_NAME: writeRequests,
				},
			})
			if err != nil {
				return fmt.Errorf("[DynamoDB] Failed to batch write results: %w", err)
			}

			retryCount := 0
			backoff := 500 * time.Millisecond
			for len(out.UnprocessedItems) > 0 && retryCount < 3 {
				time.Sleep(backoff)
				backoff *= 2

				slog.Warn("[DynamoDB] Retrying unprocessed archive items...",
					slog.Int("attempt", retryCount+1),
					slog.Int("remaining", len(out.UnprocessedItems[REVIEW_ARCHIVE_TABLE_NAME])))

				out, err = dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
					RequestItems: out.UnprocessedItems,
				})
				if err != nil {
					return fmt.Errorf("[DynamoDB] Retry error: %w", err)
				}
				retryCount++
			}

			if len(out.UnprocessedItems) > 0 {
				slog.Error("[DynamoDB] Some archive items failed after retries",
					slog.Int("remaining", len(out.UnprocessedItems[REVIEW_ARCHIVE_TABLE_NAME])))
			}
		}
	}

	slog.Info("[DynamoDB] Successfully archived analysis results",
		slog.Int("count", len(reviews)))
	return nil
}

// ArchivedReview is the flattened shape stored in the archive table.
type ArchivedReview struct {
	ReviewID   string             `dynamodbav:"review_id"`
	Sentiment  string             `dynamodbav:"sentiment"`
	Confidence float64            `dynamodbav:"confidence"`
	Text       string             `dynamodbav:"text"`
	Source     string             `dynamodbav:"source"`
	Emotions   map[string]float64 `dynamodbav:"emotions"`
	CreatedAt  int64              `dynamodbav:"created_at"`
}

// ScanArchivedReviews pages through the archive table; intended for
// operational inspection, not the analytics path.
func ScanArchivedReviews(ctx context.Context) ([]ArchivedReview, error) {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	var archived []ArchivedReview
	paginator := dynamodb.NewScanPaginator(dbClient, &dynamodb.ScanInput{
		TableName: aws.String(REVIEW_ARCHIVE_TABLE_NAME),
	})

	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Scan for archived reviews failed: %w", err)
		}
		var page []ArchivedReview
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			slog.Error("[DynamoDB] Unable to unmarshal archive page", slog.String("error", err.Error()))
			return nil, err
		}
		archived = append(archived, page...)
	}

	return archived, nil
}

func analyzedReviewToItem(review models.AnalyzedReview) map[string]types.AttributeValue {
	item := make(map[string]types.AttributeValue)

	item["review_id"] = &types.AttributeValueMemberS{Value: review.ReviewID}
	item["sentiment"] = &types.AttributeValueMemberS{Value: review.Result.Sentiment}
	item["confidence"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", review.Result.Confidence)}
	item["created_at"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", review.Result.Timestamp.Unix())}
	item["ttl"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", time.Now().Add(24*time.Hour).Unix())}

	if review.Source != "" {
		item["source"] = &types.AttributeValueMemberS{Value: review.Source}
	}
	if review.Result.Text != "" {
		item["text"] = &types.AttributeValueMemberS{Value: review.Result.Text}
	}
	if review.Result.CleanText != "" {
		item["clean_text"] = &types.AttributeValueMemberS{Value: review.Result.CleanText}
	}
	if review.Result.Vader != nil {
		item["vader_compound"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", review.Result.Vader.Scores.Compound)}
	}
	if review.Result.Transformer != nil {
		item["transformer_label"] = &types.AttributeValueMemberS{Value: review.Result.Transformer.Sentiment}
		item["transformer_confidence"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", review.Result.Transformer.Confidence)}
	}

	if len(review.Result.Emotions) > 0 {
		emotions := make(map[string]types.AttributeValue, len(review.Result.Emotions))
		for emotion, score := range review.Result.Emotions {
			emotions[emotion] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", score)}
		}
		item["emotions"] = &types.AttributeValueMemberM{Value: emotions}
	}

	return item
}

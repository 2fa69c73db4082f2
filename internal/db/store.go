package db

import (
	"context"

	"github.com/reviewpulse/reviewpulse/internal/models"
)

// AnalyticsStore adapts the package-level query helpers to the
// suggestions.Store interface.
type AnalyticsStore struct{}

func (AnalyticsStore) GetSentimentTrends(ctx context.Context, days int) (models.SentimentTrends, error) {
	return GetSentimentTrends(ctx, days)
}

func (AnalyticsStore) GetSentimentDistribution(ctx context.Context, days int) (models.SentimentDistribution, error) {
	return GetSentimentDistribution(ctx, days)
}

func (AnalyticsStore) GetEmotionAverages(ctx context.Context, days int) (models.EmotionSummary, error) {
	return GetEmotionAverages(ctx, days)
}

func (AnalyticsStore) GetRecentReviews(ctx context.Context, limit int) ([]models.ReviewRecord, error) {
	return GetRecentReviews(ctx, limit)
}

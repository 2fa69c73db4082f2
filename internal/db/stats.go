package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/reviewpulse/reviewpulse/internal/models"
)

// IncrementDailyStat bumps the (date,label) counter and folds the new
// confidence into the running mean. The whole read-modify-write runs in
// one upsert, so concurrent increments to the same row serialize inside
// the store and the mean stays exact.
func IncrementDailyStat(ctx context.Context, date time.Time, sentiment string, confidence float64) error {
	query := `
        INSERT INTO sentiment_stats (date, sentiment, count, avg_confidence)
        VALUES ($1, $2, 1, $3)
        ON CONFLICT (date, sentiment) DO UPDATE
        SET avg_confidence = (sentiment_stats.avg_confidence * sentiment_stats.count + EXCLUDED.avg_confidence)
                             / (sentiment_stats.count + 1),
            count = sentiment_stats.count + 1
    `

	if _, err := DB.Exec(ctx, query, date.Format("2006-01-02"), sentiment, confidence); err != nil {
		return fmt.Errorf("incrementing daily stat: %w", err)
	}
	return nil
}

// GetSentimentDistribution sums per-label counts over the trailing
// window and derives percentages of the total.
func GetSentimentDistribution(ctx context.Context, days int) (models.SentimentDistribution, error) {
	query := `
        SELECT sentiment, COALESCE(SUM(count), 0)
        FROM sentiment_stats
        WHERE date >= CURRENT_DATE - $1::int
        GROUP BY sentiment
    `

	rows, err := DB.Query(ctx, query, days)
	if err != nil {
		return models.SentimentDistribution{}, fmt.Errorf("querying distribution: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	total := 0
	for rows.Next() {
		var sentiment string
		var count int
		if err := rows.Scan(&sentiment, &count); err != nil {
			return models.SentimentDistribution{}, fmt.Errorf("scanning distribution row: %w", err)
		}
		counts[sentiment] = count
		total += count
	}
	if err := rows.Err(); err != nil {
		return models.SentimentDistribution{}, err
	}

	percentages := make(map[string]float64)
	if total > 0 {
		for sentiment, count := range counts {
			percentages[sentiment] = math.Round(float64(count)/float64(total)*10000) / 100
		}
	}

	return models.SentimentDistribution{
		Counts:      counts,
		Percentages: percentages,
		Total:       total,
		PeriodDays:  days,
	}, nil
}

// GetSentimentTrends returns per-day per-label counters over the
// trailing window, keyed by ISO date.
func GetSentimentTrends(ctx context.Context, days int) (models.SentimentTrends, error) {
	query := `
        SELECT date, sentiment, count, avg_confidence
        FROM sentiment_stats
        WHERE date >= CURRENT_DATE - $1::int
        ORDER BY date, sentiment
    `

	rows, err := DB.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("querying trends: %w", err)
	}
	defer rows.Close()

	trends := make(models.SentimentTrends)
	for rows.Next() {
		var date time.Time
		var sentiment string
		var stat models.LabelDayStat
		if err := rows.Scan(&date, &sentiment, &stat.Count, &stat.AvgConfidence); err != nil {
			return nil, fmt.Errorf("scanning trend row: %w", err)
		}

		day := date.Format("2006-01-02")
		if trends[day] == nil {
			trends[day] = make(map[string]models.LabelDayStat)
		}
		trends[day][sentiment] = stat
	}

	return trends, rows.Err()
}

// GetEmotionAverages averages each emotion category over reviews in the
// trailing window.
func GetEmotionAverages(ctx context.Context, days int) (models.EmotionSummary, error) {
	query := `
        SELECT emotions FROM reviews
        WHERE created_at >= NOW() - ($1::int * INTERVAL '1 day')
    `

	rows, err := DB.Query(ctx, query, days)
	if err != nil {
		return models.EmotionSummary{}, fmt.Errorf("querying emotions: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	count := 0
	for rows.Next() {
		var emotionsJSON []byte
		if err := rows.Scan(&emotionsJSON); err != nil {
			return models.EmotionSummary{}, fmt.Errorf("scanning emotion row: %w", err)
		}
		if len(emotionsJSON) == 0 {
			continue
		}

		var emotions map[string]float64
		if err := json.Unmarshal(emotionsJSON, &emotions); err != nil {
			slog.Warn("[DB] Failed to decode emotions", slog.String("error", err.Error()))
			continue
		}

		count++
		for emotion, score := range emotions {
			totals[emotion] += score
		}
	}
	if err := rows.Err(); err != nil {
		return models.EmotionSummary{}, err
	}

	averages := make(map[string]float64)
	if count > 0 {
		for emotion, total := range totals {
			averages[emotion] = math.Round(total/float64(count)*1000) / 1000
		}
	}

	return models.EmotionSummary{
		EmotionAverages: averages,
		TotalReviews:    count,
		PeriodDays:      days,
	}, nil
}

// GetAnalyticsSummary is the headline dashboard read: totals, today's
// volume, mean confidence, plus the 7-day distribution and emotions.
func GetAnalyticsSummary(ctx context.Context) (models.AnalyticsSummary, error) {
	var summary models.AnalyticsSummary

	if err := DB.QueryRow(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&summary.TotalReviews); err != nil {
		return summary, fmt.Errorf("counting reviews: %w", err)
	}

	if err := DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM reviews WHERE created_at::date = CURRENT_DATE`,
	).Scan(&summary.ReviewsToday); err != nil {
		return summary, fmt.Errorf("counting today's reviews: %w", err)
	}

	var avgConfidence *float64
	if err := DB.QueryRow(ctx, `SELECT AVG(confidence) FROM reviews`).Scan(&avgConfidence); err != nil {
		return summary, fmt.Errorf("averaging confidence: %w", err)
	}
	if avgConfidence != nil {
		summary.AverageConfidence = math.Round(*avgConfidence*1000) / 1000
	}

	distribution, err := GetSentimentDistribution(ctx, 7)
	if err != nil {
		return summary, err
	}
	emotions, err := GetEmotionAverages(ctx, 7)
	if err != nil {
		return summary, err
	}

	summary.Distribution = distribution
	summary.EmotionAnalysis = emotions
	summary.GeneratedAt = time.Now()

	return summary, nil
}

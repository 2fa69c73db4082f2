package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/reviewpulse/reviewpulse/internal/models"
)

// InsertReview persists one scored review and returns its id. Error
// variants are never persisted; the caller filters them first.
func InsertReview(ctx context.Context, result models.SentimentResult, source string) (int64, error) {
	if result.IsError() {
		return 0, fmt.Errorf("refusing to persist error result")
	}

	vaderJSON, err := json.Marshal(result.Vader)
	if err != nil {
		return 0, fmt.Errorf("marshaling vader scores: %w", err)
	}
	transformerJSON, err := json.Marshal(result.Transformer)
	if err != nil {
		return 0, fmt.Errorf("marshaling transformer scores: %w", err)
	}
	emotionsJSON, err := json.Marshal(result.Emotions)
	if err != nil {
		return 0, fmt.Errorf("marshaling emotions: %w", err)
	}
	metricsJSON, err := json.Marshal(result.TextMetrics)
	if err != nil {
		return 0, fmt.Errorf("marshaling text metrics: %w", err)
	}

	query := `
        INSERT INTO reviews (text, clean_text, sentiment, confidence,
            vader_scores, transformer_scores, emotions, text_metrics, source, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `

	var id int64
	err = DB.QueryRow(ctx, query,
		result.Text, result.CleanText, result.Sentiment, result.Confidence,
		vaderJSON, transformerJSON, emotionsJSON, metricsJSON,
		source, result.Timestamp,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting review: %w", err)
	}

	return id, nil
}

// GetRecentReviews returns the newest reviews first, up to limit.
func GetRecentReviews(ctx context.Context, limit int) ([]models.ReviewRecord, error) {
	query := `
        SELECT text, sentiment, confidence, emotions, created_at
        FROM reviews
        ORDER BY created_at DESC
        LIMIT $1
    `

	rows, err := DB.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.ReviewRecord
	for rows.Next() {
		var review models.ReviewRecord
		var emotionsJSON []byte
		if err := rows.Scan(&review.Text, &review.Sentiment, &review.Confidence, &emotionsJSON, &review.Timestamp); err != nil {
			slog.Warn("[DB] Failed to scan review row", slog.String("error", err.Error()))
			continue
		}
		if len(emotionsJSON) > 0 {
			if err := json.Unmarshal(emotionsJSON, &review.Emotions); err != nil {
				slog.Warn("[DB] Failed to decode review emotions", slog.String("error", err.Error()))
			}
		}
		reviews = append(reviews, review)
	}

	return reviews, rows.Err()
}

package db

import (
	"context"
	"fmt"
	"log/slog"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS reviews (
		id BIGSERIAL PRIMARY KEY,
		text TEXT NOT NULL,
		clean_text TEXT,
		sentiment TEXT NOT NULL,
		confidence DOUBLE PRECISION NOT NULL,
		vader_scores JSONB,
		transformer_scores JSONB,
		emotions JSONB,
		text_metrics JSONB,
		source TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sentiment_stats (
		id BIGSERIAL PRIMARY KEY,
		date DATE NOT NULL,
		sentiment TEXT NOT NULL,
		count INTEGER NOT NULL,
		avg_confidence DOUBLE PRECISION NOT NULL,
		UNIQUE(date, sentiment)
	)`,
	`CREATE TABLE IF NOT EXISTS suggestions (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		priority TEXT NOT NULL,
		impact_score INTEGER NOT NULL,
		effort_estimate TEXT NOT NULL,
		expected_outcome TEXT,
		action_items JSONB,
		status TEXT NOT NULL DEFAULT 'pending',
		generated_at TIMESTAMPTZ NOT NULL,
		analysis_period INTEGER NOT NULL,
		implemented_at TIMESTAMPTZ,
		dismissed_at TIMESTAMPTZ,
		notes TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS suggestion_feedback (
		id BIGSERIAL PRIMARY KEY,
		suggestion_id TEXT NOT NULL REFERENCES suggestions (id),
		action TEXT NOT NULL,
		feedback TEXT,
		origin TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_created_at ON reviews (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_sentiment_stats_date ON sentiment_stats (date)`,
}

// EnsureSchema creates the tables this service owns. Statements are
// idempotent so repeated startups are safe.
func EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := DB.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	slog.Info("[DB] Schema ensured")
	return nil
}

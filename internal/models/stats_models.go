package models

import "time"

// DailySentimentStat is one (date,label) counter row with a running
// mean of confidence, maintained incrementally on every ingest.
type DailySentimentStat struct {
	Date          time.Time `json:"date"`
	Sentiment     string    `json:"sentiment"`
	Count         int       `json:"count"`
	AvgConfidence float64   `json:"avg_confidence"`
}

type SentimentDistribution struct {
	Counts      map[string]int     `json:"counts"`
	Percentages map[string]float64 `json:"percentages"`
	Total       int                `json:"total"`
	PeriodDays  int                `json:"period_days"`
}

// LabelDayStat is the per-label slice of one day in a trends query.
type LabelDayStat struct {
	Count         int     `json:"count"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// SentimentTrends maps ISO date -> label -> stats.
type SentimentTrends map[string]map[string]LabelDayStat

type EmotionSummary struct {
	EmotionAverages map[string]float64 `json:"emotion_averages"`
	TotalReviews    int                `json:"total_reviews"`
	PeriodDays      int                `json:"period_days"`
}

type AnalyticsSummary struct {
	TotalReviews      int                   `json:"total_reviews"`
	ReviewsToday      int                   `json:"reviews_today"`
	AverageConfidence float64               `json:"average_confidence"`
	Distribution      SentimentDistribution `json:"sentiment_distribution"`
	EmotionAnalysis   EmotionSummary        `json:"emotion_analysis"`
	GeneratedAt       time.Time             `json:"generated_at"`
}

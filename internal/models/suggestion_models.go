package models

import "time"

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

const (
	StatusPending     = "pending"
	StatusInProgress  = "in_progress"
	StatusImplemented = "implemented"
	StatusDismissed   = "dismissed"
)

const (
	TrendImproving        = "improving"
	TrendDeclining        = "declining"
	TrendStable           = "stable"
	TrendIncreasing       = "increasing"
	TrendDecreasing       = "decreasing"
	TrendInsufficientData = "insufficient_data"
	TrendNoData           = "no_data"
)

type Suggestion struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Priority        string    `json:"priority"`
	ImpactScore     int       `json:"impact_score"`
	EffortEstimate  string    `json:"effort_estimate"`
	ExpectedOutcome string    `json:"expected_outcome"`
	ActionItems     []string  `json:"action_items"`
	Status          string    `json:"status"`
	GeneratedAt     time.Time `json:"generated_at"`
	AnalysisPeriod  int       `json:"analysis_period"`
	Notes           string    `json:"notes,omitempty"`
}

// PriorityRank orders priorities for sorting: high=3, medium=2, low=1.
func PriorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

type TrendAnalysis struct {
	Trend         string  `json:"trend"`
	Confidence    float64 `json:"confidence"`
	Slope         float64 `json:"slope"`
	RecentAverage float64 `json:"recent_average"`
}

type SatisfactionScore struct {
	Score         float64 `json:"score"`
	Grade         string  `json:"grade"`
	TotalReviews  int     `json:"total_reviews"`
	PositiveRatio float64 `json:"positive_ratio"`
	NegativeRatio float64 `json:"negative_ratio"`
}

// IssueStat is one issue category's share of recent negative reviews.
type IssueStat struct {
	Issue      string  `json:"issue"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Severity   string  `json:"severity"`
}

type VolumeTrend struct {
	Trend       string  `json:"trend"`
	Change      float64 `json:"change"`
	RecentAvg   float64 `json:"recent_avg"`
	PreviousAvg float64 `json:"previous_avg"`
}

type PatternAnalysis struct {
	SentimentTrend    TrendAnalysis         `json:"sentiment_trend"`
	Distribution      SentimentDistribution `json:"sentiment_distribution"`
	EmotionPatterns   EmotionSummary        `json:"emotion_patterns"`
	CommonIssues      []IssueStat           `json:"common_issues"`
	SatisfactionScore SatisfactionScore     `json:"satisfaction_score"`
	ReviewVolumeTrend VolumeTrend           `json:"review_volume_trend"`
	TimePeriod        int                   `json:"time_period"`
}

package suggestions

import (
	"fmt"
	"math"
	"testing"

	"github.com/reviewpulse/reviewpulse/internal/models"
)

// dayTrends builds a trends map where day i carries the given positive
// and negative counts (dates sort in index order).
func dayTrends(positives, negatives []int) models.SentimentTrends {
	trends := make(models.SentimentTrends, len(positives))
	for i := range positives {
		date := fmt.Sprintf("2026-08-%02d", i+1)
		trends[date] = map[string]models.LabelDayStat{
			models.LabelPositive: {Count: positives[i]},
			models.LabelNegative: {Count: negatives[i]},
		}
	}
	return trends
}

func TestAnalyzeSentimentTrendImproving(t *testing.T) {
	// Daily score climbs steadily: 10 reviews/day, positives go 2..8.
	positives := []int{2, 3, 4, 5, 6, 7, 8}
	negatives := []int{8, 7, 6, 5, 4, 3, 2}

	result := analyzeSentimentTrend(dayTrends(positives, negatives))

	if result.Trend != models.TrendImproving {
		t.Errorf("Trend = %q, want improving (slope %v)", result.Trend, result.Slope)
	}
	if result.Slope <= improvingSlope {
		t.Errorf("Slope = %v, want > %v", result.Slope, improvingSlope)
	}
	// Seven points: confidence = min(0.9, 7/10 + |slope|).
	wantConf := round2(math.Min(0.9, 0.7+math.Abs(result.Slope)))
	if result.Confidence != wantConf {
		t.Errorf("Confidence = %v, want %v", result.Confidence, wantConf)
	}
}

func TestAnalyzeSentimentTrendDeclining(t *testing.T) {
	positives := []int{8, 7, 6, 5, 4, 3, 2}
	negatives := []int{2, 3, 4, 5, 6, 7, 8}

	result := analyzeSentimentTrend(dayTrends(positives, negatives))

	if result.Trend != models.TrendDeclining {
		t.Errorf("Trend = %q, want declining (slope %v)", result.Trend, result.Slope)
	}
}

func TestAnalyzeSentimentTrendStable(t *testing.T) {
	positives := []int{5, 5, 5, 5, 5, 5, 5}
	negatives := []int{5, 5, 5, 5, 5, 5, 5}

	result := analyzeSentimentTrend(dayTrends(positives, negatives))

	if result.Trend != models.TrendStable {
		t.Errorf("Trend = %q, want stable (slope %v)", result.Trend, result.Slope)
	}
	if result.Slope != 0 {
		t.Errorf("Slope = %v, want 0 for flat series", result.Slope)
	}
	if result.RecentAverage != 0 {
		t.Errorf("RecentAverage = %v, want 0 for balanced days", result.RecentAverage)
	}
}

func TestAnalyzeSentimentTrendInsufficientData(t *testing.T) {
	tests := []struct {
		name           string
		trends         models.SentimentTrends
		wantConfidence float64
	}{
		{
			name:           "no data",
			trends:         models.SentimentTrends{},
			wantConfidence: 0,
		},
		{
			name:           "two days only",
			trends:         dayTrends([]int{3, 4}, []int{1, 1}),
			wantConfidence: 0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzeSentimentTrend(tt.trends)

			if result.Trend != models.TrendInsufficientData {
				t.Errorf("Trend = %q, want insufficient_data", result.Trend)
			}
			if result.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", result.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestAnalyzeSentimentTrendUsesTrailingWeek(t *testing.T) {
	// Ten days: a sharp early decline followed by seven flat days. Only
	// the trailing seven should drive the slope.
	positives := []int{10, 5, 0, 5, 5, 5, 5, 5, 5, 5}
	negatives := []int{0, 5, 10, 5, 5, 5, 5, 5, 5, 5}

	result := analyzeSentimentTrend(dayTrends(positives, negatives))

	if result.Trend != models.TrendStable {
		t.Errorf("Trend = %q, want stable over trailing week (slope %v)", result.Trend, result.Slope)
	}
}

func TestAnalyzeReviewVolume(t *testing.T) {
	tests := []struct {
		name       string
		totals     []int
		wantTrend  string
		wantChange float64
	}{
		{
			name:      "no data",
			totals:    nil,
			wantTrend: models.TrendNoData,
		},
		{
			name:      "under a week",
			totals:    []int{10, 10, 10},
			wantTrend: models.TrendInsufficientData,
		},
		{
			name:       "increasing",
			totals:     []int{10, 10, 10, 10, 10, 10, 10, 20, 20, 20, 20, 20, 20, 20},
			wantTrend:  models.TrendIncreasing,
			wantChange: 100,
		},
		{
			name:       "decreasing",
			totals:     []int{20, 20, 20, 20, 20, 20, 20, 10, 10, 10, 10, 10, 10, 10},
			wantTrend:  models.TrendDecreasing,
			wantChange: -50,
		},
		{
			name:       "stable",
			totals:     []int{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 11, 10, 10, 10},
			wantTrend:  models.TrendStable,
			wantChange: 1.4,
		},
		{
			name:      "exactly seven days has no baseline",
			totals:    []int{10, 10, 10, 10, 10, 10, 10},
			wantTrend: models.TrendStable,
		},
		{
			name:       "short baseline uses all preceding days",
			totals:     []int{10, 10, 10, 20, 20, 20, 20, 20, 20, 20},
			wantTrend:  models.TrendIncreasing,
			wantChange: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			positives := make([]int, len(tt.totals))
			copy(positives, tt.totals)
			result := analyzeReviewVolume(dayTrends(positives, make([]int, len(tt.totals))))

			if result.Trend != tt.wantTrend {
				t.Errorf("Trend = %q, want %q (change %v)", result.Trend, tt.wantTrend, result.Change)
			}
			if result.Change != tt.wantChange {
				t.Errorf("Change = %v, want %v", result.Change, tt.wantChange)
			}
		})
	}
}

package suggestions

import (
	"strings"
	"testing"

	"github.com/reviewpulse/reviewpulse/internal/models"
)

func TestSatisfactionSuggestions(t *testing.T) {
	tests := []struct {
		name       string
		score      float64
		negRatio   float64
		wantTitles []string
	}{
		{
			name:       "critical score",
			score:      42,
			wantTitles: []string{"Critical: Implement comprehensive quality improvement program"},
		},
		{
			name:       "moderate score",
			score:      65,
			wantTitles: []string{"Enhance customer experience to boost satisfaction"},
		},
		{
			name:       "good score",
			score:      85,
			wantTitles: nil,
		},
		{
			name:     "critical score with high negative ratio",
			score:    40,
			negRatio: 45,
			wantTitles: []string{
				"Critical: Implement comprehensive quality improvement program",
				"Address high negative feedback rate",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := satisfactionSuggestions(models.SatisfactionScore{
				Score:         tt.score,
				NegativeRatio: tt.negRatio,
			})

			if len(got) != len(tt.wantTitles) {
				t.Fatalf("got %d suggestions, want %d", len(got), len(tt.wantTitles))
			}
			for i, title := range tt.wantTitles {
				if got[i].Title != title {
					t.Errorf("suggestion[%d].Title = %q, want %q", i, got[i].Title, title)
				}
			}
		})
	}
}

func TestTrendSuggestions(t *testing.T) {
	tests := []struct {
		name      string
		trend     models.TrendAnalysis
		wantCount int
		wantHigh  bool
	}{
		{
			name:      "confident decline",
			trend:     models.TrendAnalysis{Trend: models.TrendDeclining, Confidence: 0.8},
			wantCount: 1,
			wantHigh:  true,
		},
		{
			name:      "low confidence decline ignored",
			trend:     models.TrendAnalysis{Trend: models.TrendDeclining, Confidence: 0.4},
			wantCount: 0,
		},
		{
			name:      "confident improvement",
			trend:     models.TrendAnalysis{Trend: models.TrendImproving, Confidence: 0.7},
			wantCount: 1,
		},
		{
			name:      "stable",
			trend:     models.TrendAnalysis{Trend: models.TrendStable, Confidence: 0.9},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trendSuggestions(tt.trend)

			if len(got) != tt.wantCount {
				t.Fatalf("got %d suggestions, want %d", len(got), tt.wantCount)
			}
			if tt.wantHigh && got[0].Priority != models.PriorityHigh {
				t.Errorf("Priority = %q, want high", got[0].Priority)
			}
		})
	}
}

func TestIssueSuggestions(t *testing.T) {
	issues := []models.IssueStat{
		{Issue: "quality_issues", Count: 6, Percentage: 30.0, Severity: "high"},
		{Issue: "pricing_issues", Count: 2, Percentage: 10.0, Severity: "medium"},
		{Issue: "delivery_issues", Count: 1, Percentage: 5.0, Severity: "low"},
	}

	got := issueSuggestions(issues)

	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2 (low severity skipped)", len(got))
	}

	quality := got[0]
	if quality.Category != categoryProductQuality {
		t.Errorf("Category = %q, want %q", quality.Category, categoryProductQuality)
	}
	if quality.Priority != models.PriorityHigh {
		t.Errorf("Priority = %q, want high for high severity", quality.Priority)
	}
	if quality.ImpactScore != 80 {
		// min(90, 20 + 30*2)
		t.Errorf("ImpactScore = %d, want 80", quality.ImpactScore)
	}
	if !strings.Contains(quality.Title, "30") {
		t.Errorf("Title = %q, want the percentage interpolated", quality.Title)
	}
	if !strings.Contains(quality.ExpectedOutcome, "quality issues") {
		t.Errorf("ExpectedOutcome = %q, want humanized issue name", quality.ExpectedOutcome)
	}

	pricing := got[1]
	if pricing.Priority != models.PriorityMedium {
		t.Errorf("Priority = %q, want medium for medium severity", pricing.Priority)
	}
	if pricing.ImpactScore != 40 {
		t.Errorf("ImpactScore = %d, want 40", pricing.ImpactScore)
	}
}

func TestIssueSuggestionsImpactCap(t *testing.T) {
	got := issueSuggestions([]models.IssueStat{
		{Issue: "performance_issues", Percentage: 60.0, Severity: "high"},
	})

	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	if got[0].ImpactScore != 90 {
		t.Errorf("ImpactScore = %d, want cap at 90", got[0].ImpactScore)
	}
}

func TestEmotionSuggestions(t *testing.T) {
	tests := []struct {
		name      string
		averages  map[string]float64
		wantCount int
	}{
		{
			name:      "high anger",
			averages:  map[string]float64{"anger": 0.2, "joy": 0.3},
			wantCount: 1,
		},
		{
			name:      "low joy",
			averages:  map[string]float64{"anger": 0.05, "joy": 0.05},
			wantCount: 1,
		},
		{
			name:      "high anger and low joy",
			averages:  map[string]float64{"anger": 0.3, "joy": 0.02},
			wantCount: 2,
		},
		{
			name:      "healthy levels",
			averages:  map[string]float64{"anger": 0.1, "joy": 0.4},
			wantCount: 0,
		},
		{
			name:      "no emotion data",
			averages:  nil,
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := emotionSuggestions(models.EmotionSummary{EmotionAverages: tt.averages})
			if len(got) != tt.wantCount {
				t.Errorf("got %d suggestions, want %d", len(got), tt.wantCount)
			}
		})
	}
}

func TestVolumeSuggestions(t *testing.T) {
	tests := []struct {
		name      string
		volume    models.VolumeTrend
		wantCount int
	}{
		{
			name:      "sharp drop",
			volume:    models.VolumeTrend{Trend: models.TrendDecreasing, Change: -35},
			wantCount: 1,
		},
		{
			name:      "mild drop ignored",
			volume:    models.VolumeTrend{Trend: models.TrendDecreasing, Change: -15},
			wantCount: 0,
		},
		{
			name:      "increasing",
			volume:    models.VolumeTrend{Trend: models.TrendIncreasing, Change: 40},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := volumeSuggestions(tt.volume)
			if len(got) != tt.wantCount {
				t.Errorf("got %d suggestions, want %d", len(got), tt.wantCount)
			}
		})
	}
}

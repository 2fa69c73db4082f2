package suggestions

import (
	"testing"

	"github.com/reviewpulse/reviewpulse/internal/models"
)

func distribution(pos, neu, neg int) models.SentimentDistribution {
	return models.SentimentDistribution{
		Counts: map[string]int{
			models.LabelPositive: pos,
			models.LabelNeutral:  neu,
			models.LabelNegative: neg,
		},
		Total: pos + neu + neg,
	}
}

func TestCalculateSatisfactionScore(t *testing.T) {
	tests := []struct {
		name      string
		pos       int
		neu       int
		neg       int
		wantScore float64
		wantGrade string
	}{
		{
			name:      "mostly positive",
			pos:       80,
			neu:       0,
			neg:       20,
			wantScore: 80.0,
			wantGrade: "A",
		},
		{
			name:      "all neutral",
			pos:       0,
			neu:       10,
			neg:       0,
			wantScore: 50.0,
			wantGrade: "D",
		},
		{
			name:      "all negative",
			pos:       0,
			neu:       0,
			neg:       15,
			wantScore: 0,
			wantGrade: "F",
		},
		{
			name:      "grade b boundary",
			pos:       7,
			neu:       0,
			neg:       3,
			wantScore: 70.0,
			wantGrade: "B",
		},
		{
			name:      "grade c",
			pos:       5,
			neu:       3,
			neg:       2,
			wantScore: 65.0,
			wantGrade: "C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calculateSatisfactionScore(distribution(tt.pos, tt.neu, tt.neg))

			if result.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", result.Score, tt.wantScore)
			}
			if result.Grade != tt.wantGrade {
				t.Errorf("Grade = %q, want %q", result.Grade, tt.wantGrade)
			}
			if result.TotalReviews != tt.pos+tt.neu+tt.neg {
				t.Errorf("TotalReviews = %d, want %d", result.TotalReviews, tt.pos+tt.neu+tt.neg)
			}
		})
	}
}

func TestCalculateSatisfactionScoreRatios(t *testing.T) {
	result := calculateSatisfactionScore(distribution(6, 1, 3))

	if result.PositiveRatio != 60.0 {
		t.Errorf("PositiveRatio = %v, want 60.0", result.PositiveRatio)
	}
	if result.NegativeRatio != 30.0 {
		t.Errorf("NegativeRatio = %v, want 30.0", result.NegativeRatio)
	}
}

func TestCalculateSatisfactionScoreEmpty(t *testing.T) {
	result := calculateSatisfactionScore(models.SentimentDistribution{})

	if result.Score != 0 {
		t.Errorf("Score = %v, want 0", result.Score)
	}
	if result.Grade != "F" {
		t.Errorf("Grade = %q, want F", result.Grade)
	}
}

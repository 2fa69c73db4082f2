package sentiment

import (
	"math"
	"testing"

	"github.com/reviewpulse/reviewpulse/internal/models"
)

func TestAnalyzeWithVADER(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clearly positive",
			input:    "This product is amazing, I love it",
			expected: models.LabelPositive,
		},
		{
			name:     "clearly negative",
			input:    "This is terrible and awful, I hate it",
			expected: models.LabelNegative,
		},
		{
			name:     "neutral statement",
			input:    "The package arrived on Tuesday",
			expected: models.LabelNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeWithVADER(tt.input)

			if result.Sentiment != tt.expected {
				t.Errorf("Sentiment = %q, want %q (compound %v)", result.Sentiment, tt.expected, result.Scores.Compound)
			}
			if result.Method != "VADER" {
				t.Errorf("Method = %q, want VADER", result.Method)
			}
			if got, want := result.Confidence, math.Abs(result.Scores.Compound); got != want {
				t.Errorf("Confidence = %v, want |compound| = %v", got, want)
			}
			if result.Confidence < 0 || result.Confidence > 1 {
				t.Errorf("Confidence = %v, want value in [0,1]", result.Confidence)
			}
		})
	}
}

func TestAnalyzeWithVADERThresholds(t *testing.T) {
	// Compound magnitudes inside (-0.05, 0.05) must stay neutral.
	result := AnalyzeWithVADER("The package arrived on Tuesday")
	if result.Scores.Compound >= positiveThreshold || result.Scores.Compound <= negativeThreshold {
		t.Skipf("lexicon scored a non-neutral compound %v for the probe text", result.Scores.Compound)
	}
	if result.Sentiment != models.LabelNeutral {
		t.Errorf("Sentiment = %q, want neutral for compound %v", result.Sentiment, result.Scores.Compound)
	}
}

package sentiment

import (
	"math"
	"testing"
)

func TestEmotionIndicators(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		emotion  string
		expected float64
	}{
		{
			name:     "joy keywords score their category",
			input:    "I am so happy and excited about this",
			emotion:  "joy",
			expected: 0.2, // 2 matches / 10 keywords
		},
		{
			name:     "repeated keyword counts every occurrence",
			input:    "happy happy happy",
			emotion:  "joy",
			expected: 0.3,
		},
		{
			name:     "anger keywords",
			input:    "this is terrible and I am furious",
			emotion:  "anger",
			expected: 0.2,
		},
		{
			name:     "fear set has eight keywords",
			input:    "I am worried and anxious",
			emotion:  "fear",
			expected: 0.25, // 2 matches / 8 keywords
		},
		{
			name:     "case insensitive",
			input:    "AMAZING product",
			emotion:  "joy",
			expected: 0.1,
		},
		{
			name:     "no matches",
			input:    "the package arrived on tuesday",
			emotion:  "anger",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emotions := EmotionIndicators(tt.input)
			got, found := emotions[tt.emotion]
			if !found {
				t.Fatalf("EmotionIndicators(%q) missing category %q", tt.input, tt.emotion)
			}
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("EmotionIndicators(%q)[%q] = %v, want %v", tt.input, tt.emotion, got, tt.expected)
			}
		})
	}
}

func TestEmotionIndicatorsAllCategoriesPresent(t *testing.T) {
	emotions := EmotionIndicators("nothing emotional here")

	categories := []string{"joy", "anger", "sadness", "fear", "surprise", "disgust"}
	if len(emotions) != len(categories) {
		t.Fatalf("expected %d categories, got %d", len(categories), len(emotions))
	}
	for _, category := range categories {
		score, found := emotions[category]
		if !found {
			t.Errorf("missing category %q", category)
			continue
		}
		if score != 0 {
			t.Errorf("category %q = %v, want 0 for unemotional text", category, score)
		}
	}
}

package sentiment

import (
	"math"
	"testing"
)

func TestCalculateTextMetrics(t *testing.T) {
	text := "GREAT product. Would buy again!"
	metrics := CalculateTextMetrics(text)

	if metrics.WordCount != 5 {
		t.Errorf("WordCount = %d, want 5", metrics.WordCount)
	}
	if metrics.SentenceCount != 2 {
		t.Errorf("SentenceCount = %d, want 2", metrics.SentenceCount)
	}
	if metrics.ExclamationCount != 1 {
		t.Errorf("ExclamationCount = %d, want 1", metrics.ExclamationCount)
	}
	if metrics.QuestionCount != 0 {
		t.Errorf("QuestionCount = %d, want 0", metrics.QuestionCount)
	}

	// "GREAT"(5) "product."(8) "Would"(5) "buy"(3) "again!"(6)
	wantAvg := (5.0 + 8.0 + 5.0 + 3.0 + 6.0) / 5.0
	if math.Abs(metrics.AvgWordLength-wantAvg) > 1e-9 {
		t.Errorf("AvgWordLength = %v, want %v", metrics.AvgWordLength, wantAvg)
	}

	// 6 uppercase runes out of 31 total.
	wantCaps := 6.0 / 31.0
	if math.Abs(metrics.CapsRatio-wantCaps) > 1e-9 {
		t.Errorf("CapsRatio = %v, want %v", metrics.CapsRatio, wantCaps)
	}
}

func TestCalculateTextMetricsEmpty(t *testing.T) {
	metrics := CalculateTextMetrics("")

	if metrics.WordCount != 0 {
		t.Errorf("WordCount = %d, want 0", metrics.WordCount)
	}
	if metrics.SentenceCount != 0 {
		t.Errorf("SentenceCount = %d, want 0", metrics.SentenceCount)
	}
	if metrics.AvgWordLength != 0 {
		t.Errorf("AvgWordLength = %v, want 0", metrics.AvgWordLength)
	}
	if metrics.CapsRatio != 0 {
		t.Errorf("CapsRatio = %v, want 0", metrics.CapsRatio)
	}
}

func TestCalculateTextMetricsQuestions(t *testing.T) {
	metrics := CalculateTextMetrics("Why did it break? Who approved this?")

	if metrics.QuestionCount != 2 {
		t.Errorf("QuestionCount = %d, want 2", metrics.QuestionCount)
	}
	if metrics.ExclamationCount != 0 {
		t.Errorf("ExclamationCount = %d, want 0", metrics.ExclamationCount)
	}
}

package sentiment

import (
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/reviewpulse/reviewpulse/internal/models"
)

// ErrEmptyInput marks empty or whitespace-only feedback. It is terminal
// per item and never aborts a batch.
var ErrEmptyInput = errors.New("empty text provided")

// Transformer disagreement weighting: the model is treated as higher
// fidelity than the lexicon.
const (
	modelWeight   = 0.7
	lexiconWeight = 0.3
)

// Analyzer fuses the VADER lexicon scorer with an optional transformer
// classifier into one label and confidence per text.
type Analyzer struct {
	model ModelScorer
}

func NewAnalyzer(model ModelScorer) *Analyzer {
	if model == nil {
		model = unavailableScorer{}
	}
	return &Analyzer{model: model}
}

// AnalyzeOne runs the full ensemble over a single text. Empty input
// short-circuits to the error variant before any scorer runs.
func (a *Analyzer) AnalyzeOne(text string) models.SentimentResult {
	if strings.TrimSpace(text) == "" {
		return models.SentimentResult{
			Error:     ErrEmptyInput.Error(),
			Timestamp: time.Now(),
		}
	}

	cleanText := Clean(text)

	vaderResult := AnalyzeWithVADER(cleanText)
	emotions := EmotionIndicators(cleanText)
	metrics := CalculateTextMetrics(text)

	finalLabel := vaderResult.Sentiment
	finalConfidence := vaderResult.Confidence

	var transformerResult *models.TransformerAnalysis
	if label, confidence, ok := a.model.Score(cleanText); ok {
		transformerResult = &models.TransformerAnalysis{
			Sentiment:  label,
			Confidence: confidence,
			Method:     "Transformer",
		}

		if vaderResult.Sentiment == label {
			finalLabel = label
			finalConfidence = (vaderResult.Confidence + confidence) / 2
		} else {
			finalLabel = label
			finalConfidence = confidence*modelWeight + vaderResult.Confidence*lexiconWeight
		}
	}

	return models.SentimentResult{
		Text:        text,
		CleanText:   cleanText,
		Sentiment:   finalLabel,
		Confidence:  round3(finalConfidence),
		Vader:       &vaderResult,
		Transformer: transformerResult,
		Emotions:    emotions,
		TextMetrics: &metrics,
		Timestamp:   time.Now(),
	}
}

// AnalyzeBatch fans out one scoring goroutine per text and returns
// results in input order. Per-item errors stay per item.
func (a *Analyzer) AnalyzeBatch(texts []string) []models.SentimentResult {
	results := make([]models.SentimentResult, len(texts))

	var wg sync.WaitGroup
	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			results[i] = a.AnalyzeOne(text)
		}(i, text)
	}
	wg.Wait()

	return results
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

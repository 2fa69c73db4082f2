package sentiment

import (
	"log/slog"
	"strings"
	"sync"
	"unicode"

	"gonum.org/v1/gonum/stat"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"

	"github.com/reviewpulse/reviewpulse/internal/models"
)

var (
	sentenceTokenizer *sentences.DefaultSentenceTokenizer
	tokenizerOnce     sync.Once
)

func getSentenceTokenizer() *sentences.DefaultSentenceTokenizer {
	tokenizerOnce.Do(func() {
		tokenizer, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			slog.Warn("[TextMetrics] Failed to load sentence tokenizer",
				slog.String("error", err.Error()))
			return
		}
		sentenceTokenizer = tokenizer
	})
	return sentenceTokenizer
}

func countSentences(text string) int {
	if tokenizer := getSentenceTokenizer(); tokenizer != nil {
		return len(tokenizer.Tokenize(text))
	}

	// Tokenizer unavailable: count period-delimited fragments.
	count := 0
	for _, s := range strings.Split(text, ".") {
		if strings.TrimSpace(s) != "" {
			count++
		}
	}
	return count
}

// CalculateTextMetrics reports descriptive metrics over the original,
// uncleaned text.
func CalculateTextMetrics(text string) models.TextMetrics {
	words := strings.Fields(text)

	var avgWordLength float64
	if len(words) > 0 {
		lengths := make([]float64, len(words))
		for i, word := range words {
			lengths[i] = float64(len(word))
		}
		avgWordLength = stat.Mean(lengths, nil)
	}

	runes := []rune(text)
	upper := 0
	for _, r := range runes {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	var capsRatio float64
	if len(runes) > 0 {
		capsRatio = float64(upper) / float64(len(runes))
	}

	return models.TextMetrics{
		WordCount:        len(words),
		SentenceCount:    countSentences(text),
		AvgWordLength:    avgWordLength,
		ExclamationCount: strings.Count(text, "!"),
		QuestionCount:    strings.Count(text, "?"),
		CapsRatio:        capsRatio,
	}
}

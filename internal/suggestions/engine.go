package suggestions

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/reviewpulse/reviewpulse/internal/models"
)

const (
	maxSuggestions    = 20
	reviewSampleLimit = 200
)

// Store is the aggregated-statistics collaborator the engine reads
// from. It holds no locks here; the engine accepts eventually-consistent
// snapshots.
type Store interface {
	GetSentimentTrends(ctx context.Context, days int) (models.SentimentTrends, error)
	GetSentimentDistribution(ctx context.Context, days int) (models.SentimentDistribution, error)
	GetEmotionAverages(ctx context.Context, days int) (models.EmotionSummary, error)
	GetRecentReviews(ctx context.Context, limit int) ([]models.ReviewRecord, error)
}

// Engine turns time-bucketed sentiment statistics and a sample of
// recent reviews into ranked, explainable suggestions.
type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// AnalyzePatterns assembles the trailing-window picture the suggestion
// rules evaluate: sentiment trend, distribution, emotion averages,
// common issues, satisfaction, and review volume.
func (e *Engine) AnalyzePatterns(ctx context.Context, days int) (models.PatternAnalysis, error) {
	trends, err := e.store.GetSentimentTrends(ctx, days)
	if err != nil {
		return models.PatternAnalysis{}, fmt.Errorf("fetching sentiment trends: %w", err)
	}
	distribution, err := e.store.GetSentimentDistribution(ctx, days)
	if err != nil {
		return models.PatternAnalysis{}, fmt.Errorf("fetching sentiment distribution: %w", err)
	}
	emotions, err := e.store.GetEmotionAverages(ctx, days)
	if err != nil {
		return models.PatternAnalysis{}, fmt.Errorf("fetching emotion averages: %w", err)
	}
	recentReviews, err := e.store.GetRecentReviews(ctx, reviewSampleLimit)
	if err != nil {
		return models.PatternAnalysis{}, fmt.Errorf("fetching recent reviews: %w", err)
	}

	return models.PatternAnalysis{
		SentimentTrend:    analyzeSentimentTrend(trends),
		Distribution:      distribution,
		EmotionPatterns:   emotions,
		CommonIssues:      identifyCommonIssues(recentReviews),
		SatisfactionScore: calculateSatisfactionScore(distribution),
		ReviewVolumeTrend: analyzeReviewVolume(trends),
		TimePeriod:        days,
	}, nil
}

// GenerateSuggestions evaluates the five rule sets against the analysis
// and returns at most 20 suggestions ordered by priority rank, then
// impact score. A nil analysis is computed from the store first.
func (e *Engine) GenerateSuggestions(ctx context.Context, analysis *models.PatternAnalysis, days int) ([]models.Suggestion, error) {
	if analysis == nil {
		computed, err := e.AnalyzePatterns(ctx, days)
		if err != nil {
			return nil, err
		}
		analysis = &computed
	}

	var suggestions []models.Suggestion
	suggestions = append(suggestions, satisfactionSuggestions(analysis.SatisfactionScore)...)
	suggestions = append(suggestions, trendSuggestions(analysis.SentimentTrend)...)
	suggestions = append(suggestions, issueSuggestions(analysis.CommonIssues)...)
	suggestions = append(suggestions, emotionSuggestions(analysis.EmotionPatterns)...)
	suggestions = append(suggestions, volumeSuggestions(analysis.ReviewVolumeTrend)...)

	now := time.Now()
	runID := uuid.NewString()
	for i := range suggestions {
		suggestions[i].ID = suggestionID(suggestions[i].Title, suggestions[i].Category, runID)
		suggestions[i].Status = models.StatusPending
		suggestions[i].GeneratedAt = now
		suggestions[i].AnalysisPeriod = days
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		ri, rj := models.PriorityRank(suggestions[i].Priority), models.PriorityRank(suggestions[j].Priority)
		if ri != rj {
			return ri > rj
		}
		return suggestions[i].ImpactScore > suggestions[j].ImpactScore
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	slog.Info("[SuggestionEngine] Generated suggestions",
		slog.Int("count", len(suggestions)),
		slog.Int("window_days", days))

	return suggestions, nil
}

// suggestionID combines a content hash of the stable fields with a
// per-run identifier, so repeated runs over unchanged data never reuse
// a prior run's ids.
func suggestionID(title, category, runID string) string {
	sum := sha256.Sum256([]byte(title + category))
	return fmt.Sprintf("sug_%s_%s", hex.EncodeToString(sum[:])[:12], runID)
}

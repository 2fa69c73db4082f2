package sentiment

import (
	"math"

	"github.com/jonreiter/govader"
	"github.com/reviewpulse/reviewpulse/internal/models"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

// Compound polarity at or beyond these bounds decides the label;
// anything between is neutral.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// AnalyzeWithVADER scores cleaned text with the VADER lexicon. The
// compound score lands in [-1,1]; confidence is its magnitude.
func AnalyzeWithVADER(text string) models.VaderAnalysis {
	scores := analyzer.PolarityScores(text)
	compound := scores.Compound

	var label string
	switch {
	case compound >= positiveThreshold:
		label = models.LabelPositive
	case compound <= negativeThreshold:
		label = models.LabelNegative
	default:
		label = models.LabelNeutral
	}

	return models.VaderAnalysis{
		Sentiment:  label,
		Confidence: math.Abs(compound),
		Scores: models.VaderScores{
			Negative: scores.Negative,
			Neutral:  scores.Neutral,
			Positive: scores.Positive,
			Compound: compound,
		},
		Method: "VADER",
	}
}

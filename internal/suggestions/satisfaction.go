package suggestions

import "github.com/reviewpulse/reviewpulse/internal/models"

// Satisfaction weights per label; the weighted mean lands in [0,100].
const (
	positiveWeight = 100
	neutralWeight  = 50
	negativeWeight = 0
)

func calculateSatisfactionScore(distribution models.SentimentDistribution) models.SatisfactionScore {
	total := distribution.Total
	if total == 0 {
		return models.SatisfactionScore{Score: 0, Grade: "F"}
	}

	pos := distribution.Counts[models.LabelPositive]
	neu := distribution.Counts[models.LabelNeutral]
	neg := distribution.Counts[models.LabelNegative]

	weighted := float64(pos*positiveWeight+neu*neutralWeight+neg*negativeWeight) / float64(total)

	return models.SatisfactionScore{
		Score:         round1(weighted),
		Grade:         satisfactionGrade(weighted),
		TotalReviews:  total,
		PositiveRatio: round1(float64(pos) / float64(total) * 100),
		NegativeRatio: round1(float64(neg) / float64(total) * 100),
	}
}

func satisfactionGrade(score float64) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

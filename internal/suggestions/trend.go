package suggestions

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/reviewpulse/reviewpulse/internal/models"
)

// Slope bounds separating improving/declining from stable, in score
// units per day.
const (
	improvingSlope = 0.02
	decliningSlope = -0.02
)

// analyzeSentimentTrend reduces each day with data to one scalar,
// (positive - negative) / total, and fits an ordinary-least-squares
// line over the trailing seven days.
func analyzeSentimentTrend(trends models.SentimentTrends) models.TrendAnalysis {
	if len(trends) == 0 {
		return models.TrendAnalysis{Trend: models.TrendInsufficientData, Confidence: 0}
	}

	dates := sortedDates(trends)
	if len(dates) < 3 {
		return models.TrendAnalysis{Trend: models.TrendInsufficientData, Confidence: 0.3}
	}

	var scores []float64
	for _, date := range dates {
		day := trends[date]
		pos := day[models.LabelPositive].Count
		neu := day[models.LabelNeutral].Count
		neg := day[models.LabelNegative].Count

		total := pos + neu + neg
		if total > 0 {
			scores = append(scores, float64(pos-neg)/float64(total))
		}
	}

	if len(scores) < 2 {
		return models.TrendAnalysis{Trend: models.TrendInsufficientData, Confidence: 0.3}
	}

	recent := scores
	if len(recent) > 7 {
		recent = recent[len(recent)-7:]
	}

	xs := make([]float64, len(recent))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, recent, nil, false)

	var trend string
	switch {
	case slope > improvingSlope:
		trend = models.TrendImproving
	case slope < decliningSlope:
		trend = models.TrendDeclining
	default:
		trend = models.TrendStable
	}

	confidence := math.Min(0.9, float64(len(recent))/10+math.Abs(slope))

	return models.TrendAnalysis{
		Trend:         trend,
		Confidence:    round2(confidence),
		Slope:         round4(slope),
		RecentAverage: round3(stat.Mean(recent, nil)),
	}
}

// analyzeReviewVolume compares the mean of the last seven daily totals
// against the preceding period.
func analyzeReviewVolume(trends models.SentimentTrends) models.VolumeTrend {
	if len(trends) == 0 {
		return models.VolumeTrend{Trend: models.TrendNoData, Change: 0}
	}

	dates := sortedDates(trends)
	if len(dates) < 7 {
		return models.VolumeTrend{Trend: models.TrendInsufficientData, Change: 0}
	}

	dailyTotals := make([]float64, len(dates))
	for i, date := range dates {
		total := 0
		for _, labelStat := range trends[date] {
			total += labelStat.Count
		}
		dailyTotals[i] = float64(total)
	}

	recentAvg := stat.Mean(dailyTotals[len(dailyTotals)-7:], nil)
	var previousAvg float64
	if len(dailyTotals) >= 14 {
		previousAvg = stat.Mean(dailyTotals[len(dailyTotals)-14:len(dailyTotals)-7], nil)
	} else if preceding := dailyTotals[:len(dailyTotals)-7]; len(preceding) > 0 {
		previousAvg = stat.Mean(preceding, nil)
	}

	var change float64
	if previousAvg != 0 {
		change = (recentAvg - previousAvg) / previousAvg * 100
	}

	var trend string
	switch {
	case change > 10:
		trend = models.TrendIncreasing
	case change < -10:
		trend = models.TrendDecreasing
	default:
		trend = models.TrendStable
	}

	return models.VolumeTrend{
		Trend:       trend,
		Change:      round1(change),
		RecentAvg:   round1(recentAvg),
		PreviousAvg: round1(previousAvg),
	}
}

func sortedDates(trends models.SentimentTrends) []string {
	dates := make([]string, 0, len(trends))
	for date := range trends {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

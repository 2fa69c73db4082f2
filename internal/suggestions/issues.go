package suggestions

import (
	"sort"
	"strings"

	"github.com/reviewpulse/reviewpulse/internal/models"
)

// issueCategories fixes iteration order for the keyword policy below.
var issueCategories = []string{
	"quality_issues",
	"usability_issues",
	"performance_issues",
	"customer_service_issues",
	"pricing_issues",
	"delivery_issues",
}

// issueKeywords is a fixed heuristic policy; matching is plain
// substring containment against lower-cased review text.
var issueKeywords = map[string][]string{
	"quality_issues": {
		"broken", "defective", "poor quality", "cheap", "flimsy",
		"doesn't work", "malfunctioned", "defect", "faulty",
		"low quality", "terrible quality",
	},
	"usability_issues": {
		"confusing", "hard to use", "difficult", "complicated",
		"unclear", "not intuitive", "confusing interface",
		"hard to navigate", "user-unfriendly",
	},
	"performance_issues": {
		"slow", "laggy", "crashes", "freezes", "unresponsive",
		"loading", "timeout", "performance", "speed",
	},
	"customer_service_issues": {
		"rude staff", "poor service", "unhelpful", "long wait",
		"no response", "bad support", "customer service",
		"support team", "representatives",
	},
	"pricing_issues": {
		"expensive", "overpriced", "too costly", "not worth",
		"money", "price", "cost", "cheap alternative",
		"value for money", "overcharged",
	},
	"delivery_issues": {
		"late delivery", "shipping", "delayed", "not arrived",
		"delivery problem", "shipping cost", "packaging",
	},
}

const issueReportThreshold = 5 // percent of negative reviews

// identifyCommonIssues counts, per issue category, the negative reviews
// mentioning any of the category's keywords (at most once per review),
// keeps categories at or above 5% of negative reviews, and sorts them
// by percentage descending.
func identifyCommonIssues(reviews []models.ReviewRecord) []models.IssueStat {
	issueCounts := make(map[string]int)
	totalNegative := 0

	for _, review := range reviews {
		if review.Sentiment != models.LabelNegative {
			continue
		}
		totalNegative++
		text := strings.ToLower(review.Text)

		for issue, keywords := range issueKeywords {
			for _, keyword := range keywords {
				if strings.Contains(text, keyword) {
					issueCounts[issue]++
					break
				}
			}
		}
	}

	if totalNegative == 0 {
		return nil
	}

	var issues []models.IssueStat
	for _, issue := range issueCategories {
		count := issueCounts[issue]
		percentage := float64(count) / float64(totalNegative) * 100
		if percentage < issueReportThreshold {
			continue
		}
		issues = append(issues, models.IssueStat{
			Issue:      issue,
			Count:      count,
			Percentage: round1(percentage),
			Severity:   issueSeverity(percentage),
		})
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Percentage > issues[j].Percentage
	})

	return issues
}

func issueSeverity(percentage float64) string {
	switch {
	case percentage >= 20:
		return "high"
	case percentage >= 10:
		return "medium"
	default:
		return "low"
	}
}

package suggestions

import (
	"fmt"
	"math"
	"strings"

	"github.com/reviewpulse/reviewpulse/internal/models"
)

// Suggestion categories used across the rule sets.
const (
	categorySatisfaction    = "customer_satisfaction"
	categoryProductQuality  = "product_quality"
	categoryUserExperience  = "user_experience"
	categoryCustomerService = "customer_service"
	categoryPricingValue    = "pricing_value"
	categoryMarketing       = "marketing_messaging"
)

func satisfactionSuggestions(satisfaction models.SatisfactionScore) []models.Suggestion {
	var suggestions []models.Suggestion
	score := satisfaction.Score
	negativeRatio := satisfaction.NegativeRatio

	if score < 50 {
		suggestions = append(suggestions, models.Suggestion{
			Title:           "Critical: Implement comprehensive quality improvement program",
			Description:     fmt.Sprintf("Your satisfaction score is %v/100, indicating serious customer satisfaction issues. Consider conducting a thorough review of your product/service quality.", score),
			Category:        categorySatisfaction,
			Priority:        models.PriorityHigh,
			ImpactScore:     90,
			EffortEstimate:  "high",
			ExpectedOutcome: "Significant improvement in customer satisfaction and retention",
			ActionItems: []string{
				"Conduct customer interviews to identify root causes",
				"Review and improve product quality processes",
				"Implement customer feedback loop",
				"Train customer-facing staff on service excellence",
			},
		})
	} else if score < 70 {
		suggestions = append(suggestions, models.Suggestion{
			Title:           "Enhance customer experience to boost satisfaction",
			Description:     fmt.Sprintf("Your satisfaction score is %v/100. There's room for improvement to reach excellent customer satisfaction levels.", score),
			Category:        categorySatisfaction,
			Priority:        models.PriorityMedium,
			ImpactScore:     70,
			EffortEstimate:  "medium",
			ExpectedOutcome: "Improved customer loyalty and positive word-of-mouth",
			ActionItems: []string{
				"Analyze customer journey for pain points",
				"Implement proactive customer support",
				"Gather and act on customer feedback regularly",
				"Optimize product/service based on user needs",
			},
		})
	}

	if negativeRatio > 30 {
		suggestions = append(suggestions, models.Suggestion{
			Title:           "Address high negative feedback rate",
			Description:     fmt.Sprintf("%v%% of your reviews are negative. Focus on converting detractors into promoters.", negativeRatio),
			Category:        categorySatisfaction,
			Priority:        models.PriorityHigh,
			ImpactScore:     80,
			EffortEstimate:  "medium",
			ExpectedOutcome: "Reduced negative feedback and improved brand reputation",
			ActionItems: []string{
				"Create rapid response system for negative feedback",
				"Implement service recovery protocols",
				"Follow up with dissatisfied customers",
				"Use negative feedback to improve products/services",
			},
		})
	}

	return suggestions
}

func trendSuggestions(trend models.TrendAnalysis) []models.Suggestion {
	var suggestions []models.Suggestion

	if trend.Trend == models.TrendDeclining && trend.Confidence > 0.5 {
		suggestions = append(suggestions, models.Suggestion{
			Title:           "Urgent: Address declining customer sentiment",
			Description:     "Customer sentiment has been declining. Take immediate action to identify and resolve issues causing dissatisfaction.",
			Category:        categorySatisfaction,
			Priority:        models.PriorityHigh,
			ImpactScore:     95,
			EffortEstimate:  "high",
			ExpectedOutcome: "Halt negative trend and restore customer confidence",
			ActionItems: []string{
				"Conduct emergency customer satisfaction survey",
				"Analyze recent changes that might have caused decline",
				"Implement immediate fixes for critical issues",
				"Communicate transparently with customers about improvements",
			},
		})
	} else if trend.Trend == models.TrendImproving && trend.Confidence > 0.6 {
		suggestions = append(suggestions, models.Suggestion{
			Title:           "Capitalize on positive sentiment momentum",
			Description:     "Customer sentiment is improving! Now is the perfect time to strengthen your position and build on this positive trend.",
			Category:        categoryMarketing,
			Priority:        models.PriorityMedium,
			ImpactScore:     60,
			EffortEstimate:  "low",
			ExpectedOutcome: "Accelerated growth and stronger market position",
			ActionItems: []string{
				"Showcase positive customer testimonials",
				"Launch customer referral program",
				"Increase marketing spend to capitalize on momentum",
				"Gather and share success stories",
			},
		})
	}

	return suggestions
}

func issueSuggestions(issues []models.IssueStat) []models.Suggestion {
	var suggestions []models.Suggestion

	for _, issue := range issues {
		if issue.Severity != "high" && issue.Severity != "medium" {
			continue
		}
		if suggestion, ok := issueSpecificSuggestion(issue); ok {
			suggestions = append(suggestions, suggestion)
		}
	}

	return suggestions
}

// issueSuggestionTemplate carries the copy that varies per issue
// category; priority, impact and effort derive from the issue stats.
type issueSuggestionTemplate struct {
	title       string
	description string
	category    string
	actionItems []string
}

var issueSuggestionTemplates = map[string]issueSuggestionTemplate{
	"quality_issues": {
		title:       "Address product quality concerns (%v%% of negative reviews)",
		description: "Quality issues are mentioned in %v%% of negative reviews. Focus on improving product quality and reliability.",
		category:    categoryProductQuality,
		actionItems: []string{
			"Implement stricter quality control processes",
			"Review supplier/manufacturer standards",
			"Conduct product testing and durability analysis",
			"Create quality assurance checklist",
		},
	},
	"usability_issues": {
		title:       "Improve product usability and user experience (%v%% mention)",
		description: "Users find your product difficult to use. %v%% of negative reviews mention usability problems.",
		category:    categoryUserExperience,
		actionItems: []string{
			"Conduct usability testing with real users",
			"Simplify user interface and workflows",
			"Create better onboarding and tutorials",
			"Implement user-centered design principles",
		},
	},
	"performance_issues": {
		title:       "Optimize performance and reliability (%v%% mention)",
		description: "Performance issues are affecting customer satisfaction. %v%% of negative reviews cite performance problems.",
		category:    categoryProductQuality,
		actionItems: []string{
			"Conduct performance auditing and optimization",
			"Upgrade infrastructure and systems",
			"Implement monitoring and alerting",
			"Optimize code and resource usage",
		},
	},
	"customer_service_issues": {
		title:       "Enhance customer service quality (%v%% mention)",
		description: "Customer service issues are mentioned in %v%% of negative reviews. Improve support quality and responsiveness.",
		category:    categoryCustomerService,
		actionItems: []string{
			"Train customer service representatives",
			"Implement faster response time goals",
			"Create comprehensive FAQ and self-service options",
			"Monitor and improve service quality metrics",
		},
	},
	"pricing_issues": {
		title:       "Review pricing strategy and value proposition (%v%% mention)",
		description: "Pricing concerns appear in %v%% of negative reviews. Consider adjusting pricing or improving perceived value.",
		category:    categoryPricingValue,
		actionItems: []string{
			"Conduct competitive pricing analysis",
			"Survey customers on price sensitivity",
			"Improve value communication and benefits",
			"Consider tiered pricing or promotions",
		},
	},
	"delivery_issues": {
		title:       "Improve delivery and logistics (%v%% mention)",
		description: "Delivery issues are mentioned in %v%% of negative reviews. Focus on improving shipping and fulfillment.",
		category:    categoryUserExperience,
		actionItems: []string{
			"Review shipping partners and processes",
			"Implement order tracking and communication",
			"Optimize packaging to prevent damage",
			"Set realistic delivery expectations",
		},
	},
}

func issueSpecificSuggestion(issue models.IssueStat) (models.Suggestion, bool) {
	template, ok := issueSuggestionTemplates[issue.Issue]
	if !ok {
		return models.Suggestion{}, false
	}

	priority := models.PriorityMedium
	effort := "medium"
	if issue.Severity == "high" {
		priority = models.PriorityHigh
		effort = "high"
	}

	return models.Suggestion{
		Title:           fmt.Sprintf(template.title, issue.Percentage),
		Description:     fmt.Sprintf(template.description, issue.Percentage),
		Category:        template.category,
		Priority:        priority,
		ImpactScore:     int(math.Min(90, 20+issue.Percentage*2)),
		EffortEstimate:  effort,
		ExpectedOutcome: fmt.Sprintf("Reduce %s complaints by addressing root causes", strings.ReplaceAll(issue.Issue, "_", " ")),
		ActionItems:     template.actionItems,
	}, true
}

func emotionSuggestions(emotions models.EmotionSummary) []models.Suggestion {
	var suggestions []models.Suggestion
	averages := emotions.EmotionAverages
	if len(averages) == 0 {
		return suggestions
	}

	if averages["anger"] > 0.15 {
		suggestions = append(suggestions, models.Suggestion{
			Title:           "Address customer frustration and anger",
			Description:     "High anger levels detected in customer feedback. Customers are frustrated - this needs immediate attention.",
			Category:        categorySatisfaction,
			Priority:        models.PriorityHigh,
			ImpactScore:     85,
			EffortEstimate:  "medium",
			ExpectedOutcome: "Reduced customer frustration and improved satisfaction",
			ActionItems: []string{
				"Identify specific causes of customer anger",
				"Implement conflict resolution training",
				"Create empathy-driven customer service protocols",
				"Follow up with angry customers to resolve issues",
			},
		})
	}

	if averages["joy"] < 0.1 {
		suggestions = append(suggestions, models.Suggestion{
			Title:           "Increase customer delight and positive experiences",
			Description:     "Low joy levels in customer feedback suggest missed opportunities to create delightful experiences.",
			Category:        categoryUserExperience,
			Priority:        models.PriorityMedium,
			ImpactScore:     65,
			EffortEstimate:  "medium",
			ExpectedOutcome: "Increased customer delight and positive word-of-mouth",
			ActionItems: []string{
				"Add surprise and delight elements to customer journey",
				"Celebrate customer milestones and achievements",
				"Implement gamification or reward programs",
				"Focus on exceeding customer expectations",
			},
		})
	}

	return suggestions
}

func volumeSuggestions(volume models.VolumeTrend) []models.Suggestion {
	var suggestions []models.Suggestion

	if volume.Trend == models.TrendDecreasing && volume.Change < -20 {
		suggestions = append(suggestions, models.Suggestion{
			Title:           "Increase customer engagement and feedback collection",
			Description:     fmt.Sprintf("Review volume has decreased by %v%%. This might indicate reduced customer engagement or satisfaction.", math.Abs(volume.Change)),
			Category:        categoryMarketing,
			Priority:        models.PriorityMedium,
			ImpactScore:     50,
			EffortEstimate:  "low",
			ExpectedOutcome: "Increased customer engagement and valuable feedback",
			ActionItems: []string{
				"Implement proactive review request system",
				"Incentivize customer feedback with rewards",
				"Follow up with customers after purchase/interaction",
				"Make leaving reviews easier and more accessible",
			},
		})
	}

	return suggestions
}

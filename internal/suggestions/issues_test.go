package suggestions

import (
	"testing"

	"github.com/reviewpulse/reviewpulse/internal/models"
)

func negativeReview(text string) models.ReviewRecord {
	return models.ReviewRecord{Text: text, Sentiment: models.LabelNegative}
}

func positiveReview(text string) models.ReviewRecord {
	return models.ReviewRecord{Text: text, Sentiment: models.LabelPositive}
}

func TestIdentifyCommonIssues(t *testing.T) {
	reviews := []models.ReviewRecord{
		negativeReview("arrived broken out of the box"),
		negativeReview("completely broken after a week, faulty unit"),
		negativeReview("the hinge is broken"),
		negativeReview("way too expensive for what you get"),
		negativeReview("no complaints category here at all"),
		negativeReview("nothing specific, just unhappy"),
		negativeReview("still nothing specific"),
		negativeReview("again nothing specific"),
		negativeReview("and more vague grumbling"),
		negativeReview("final vague one"),
		positiveReview("broken in a good way, love it"), // positive reviews never count
	}

	issues := identifyCommonIssues(reviews)

	if len(issues) != 2 {
		t.Fatalf("got %d issues, want 2: %+v", len(issues), issues)
	}

	quality := issues[0]
	if quality.Issue != "quality_issues" {
		t.Errorf("issues[0].Issue = %q, want quality_issues first (highest percentage)", quality.Issue)
	}
	if quality.Count != 3 {
		t.Errorf("quality count = %d, want 3", quality.Count)
	}
	if quality.Percentage != 30.0 {
		t.Errorf("quality percentage = %v, want 30.0", quality.Percentage)
	}
	if quality.Severity != "high" {
		t.Errorf("quality severity = %q, want high", quality.Severity)
	}

	pricing := issues[1]
	if pricing.Issue != "pricing_issues" {
		t.Errorf("issues[1].Issue = %q, want pricing_issues", pricing.Issue)
	}
	if pricing.Percentage != 10.0 {
		t.Errorf("pricing percentage = %v, want 10.0", pricing.Percentage)
	}
	if pricing.Severity != "medium" {
		t.Errorf("pricing severity = %q, want medium", pricing.Severity)
	}
}

func TestIdentifyCommonIssuesCountsReviewOnce(t *testing.T) {
	// Multiple keywords from the same category in one review count it
	// once for that category.
	reviews := []models.ReviewRecord{
		negativeReview("broken, defective, faulty and flimsy"),
		negativeReview("no issue keywords"),
	}

	issues := identifyCommonIssues(reviews)

	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %+v", len(issues), issues)
	}
	if issues[0].Count != 1 {
		t.Errorf("Count = %d, want 1 despite four matching keywords", issues[0].Count)
	}
	if issues[0].Percentage != 50.0 {
		t.Errorf("Percentage = %v, want 50.0", issues[0].Percentage)
	}
}

func TestIdentifyCommonIssuesBelowThreshold(t *testing.T) {
	// 1 mention across 25 negatives is 4%, under the 5% floor.
	reviews := []models.ReviewRecord{negativeReview("it arrived broken")}
	for i := 0; i < 24; i++ {
		reviews = append(reviews, negativeReview("vague dissatisfaction"))
	}

	if issues := identifyCommonIssues(reviews); len(issues) != 0 {
		t.Errorf("got %d issues, want none below threshold: %+v", len(issues), issues)
	}
}

func TestIdentifyCommonIssuesNoNegatives(t *testing.T) {
	reviews := []models.ReviewRecord{
		positiveReview("works great"),
		{Text: "it exists", Sentiment: models.LabelNeutral},
	}

	if issues := identifyCommonIssues(reviews); issues != nil {
		t.Errorf("got %+v, want nil without negative reviews", issues)
	}
}

package models

import (
	"encoding/json"
	"time"
)

const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

// ReviewInput is a single piece of raw feedback as published on the
// raw-reviews topic.
type ReviewInput struct {
	ReviewID string `json:"review_id"`
	Source   string `json:"source,omitempty"`
	Text     string `json:"text"`
}

// AnalyzedReview pairs a review with its scored result; it is the
// payload on the review-results topic.
type AnalyzedReview struct {
	ReviewInput
	Result SentimentResult `json:"result"`
}

// VaderScores are the raw polarity components reported by the lexicon
// scorer.
type VaderScores struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

type VaderAnalysis struct {
	Sentiment  string      `json:"sentiment"`
	Confidence float64     `json:"confidence"`
	Scores     VaderScores `json:"scores"`
	Method     string      `json:"method"`
}

type TransformerAnalysis struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Method     string  `json:"method"`
}

type TextMetrics struct {
	WordCount        int     `json:"word_count"`
	SentenceCount    int     `json:"sentence_count"`
	AvgWordLength    float64 `json:"avg_word_length"`
	ExclamationCount int     `json:"exclamation_count"`
	QuestionCount    int     `json:"question_count"`
	CapsRatio        float64 `json:"caps_ratio"`
}

// SentimentResult is the full ensemble output for one text. The error
// variant, produced only for empty input, carries nothing but the error
// message and timestamp on the wire.
type SentimentResult struct {
	Text        string               `json:"text"`
	CleanText   string               `json:"clean_text"`
	Sentiment   string               `json:"sentiment"`
	Confidence  float64              `json:"confidence"`
	Vader       *VaderAnalysis       `json:"vader_analysis,omitempty"`
	Transformer *TransformerAnalysis `json:"transformer_analysis,omitempty"`
	Emotions    map[string]float64   `json:"emotions,omitempty"`
	TextMetrics *TextMetrics         `json:"text_metrics,omitempty"`
	Timestamp   time.Time            `json:"timestamp"`
	Error       string               `json:"error,omitempty"`
}

func (r SentimentResult) IsError() bool { return r.Error != "" }

func (r SentimentResult) MarshalJSON() ([]byte, error) {
	if r.IsError() {
		return json.Marshal(struct {
			Error     string    `json:"error"`
			Timestamp time.Time `json:"timestamp"`
		}{Error: r.Error, Timestamp: r.Timestamp})
	}
	type plain SentimentResult
	return json.Marshal(plain(r))
}

// ReviewRecord is the persisted shape returned by recent-review reads;
// the suggestion engine samples these.
type ReviewRecord struct {
	Text       string             `json:"text"`
	Sentiment  string             `json:"sentiment"`
	Confidence float64            `json:"confidence"`
	Emotions   map[string]float64 `json:"emotions"`
	Timestamp  time.Time          `json:"timestamp"`
}

package reviews

import (
	"fmt"

	"github.com/cdipaolo/sentiment"
)

// Analyzer scores a review text. Positive texts score above zero.
type Analyzer interface {
	Score(text string) float64
}

// SentimentAnalyzer wraps the pre-trained naive Bayes sentiment model.
type SentimentAnalyzer struct {
	model sentiment.Models
}

var _ Analyzer = (*SentimentAnalyzer)(nil)

// NewSentimentAnalyzer restores the bundled English sentiment model.
func NewSentimentAnalyzer() (*SentimentAnalyzer, error) {
	model, err := sentiment.Restore()
	if err != nil {
		return nil, fmt.Errorf("failed to restore sentiment model: %w", err)
	}
	return &SentimentAnalyzer{model: model}, nil
}

// Score classifies the text, returning 1 for positive and 0 for negative.
func (a *SentimentAnalyzer) Score(text string) float64 {
	analysis := a.model.SentimentAnalysis(text, sentiment.English)
	return float64(analysis.Score)
}

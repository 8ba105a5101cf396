package service

import "SmartInvest/internal/domain/models"

// TrendProjector fits a model over a close series and projects future prices.
type TrendProjector interface {
	Project(closes []float64) (models.Projection, error)
}

// SentimentScorer classifies a set of headlines.
type SentimentScorer interface {
	Score(headlines []string) models.Sentiment
}

package models

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// Sentiment is the net keyword score over a set of headlines.
type Sentiment struct {
	Label         SentimentLabel `json:"label"`
	Score         float64        `json:"score"`
	HeadlineCount int            `json:"headline_count"`
}

type Insights struct {
	Symbol string   `json:"symbol"`
	Pros   []string `json:"pros"`
	Cons   []string `json:"cons"`
}

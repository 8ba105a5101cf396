package insights

import (
	"strings"

	"SmartInvest/internal/domain/models"
	domsvc "SmartInvest/internal/domain/service"
)

var (
	positiveWords = map[string]struct{}{
		"surge": {}, "beat": {}, "growth": {}, "bullish": {}, "upgrade": {}, "record": {}, "partnership": {},
	}
	negativeWords = map[string]struct{}{
		"drop": {}, "miss": {}, "bearish": {}, "downgrade": {}, "lawsuit": {}, "hack": {}, "ban": {},
	}
)

// KeywordScorer scores headlines against fixed positive and negative word sets.
type KeywordScorer struct{}

func NewKeywordScorer() *KeywordScorer { return &KeywordScorer{} }

// Score counts each distinct keyword once per headline.
func (KeywordScorer) Score(headlines []string) models.Sentiment {
	score := 0
	for _, title := range headlines {
		seen := make(map[string]struct{})
		for _, raw := range strings.Fields(title) {
			w := strings.ToLower(strings.Trim(raw, ".,!?"))
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			if _, ok := positiveWords[w]; ok {
				score++
			} else if _, ok := negativeWords[w]; ok {
				score--
			}
		}
	}

	label := models.SentimentNeutral
	switch {
	case score > 1:
		label = models.SentimentPositive
	case score < -1:
		label = models.SentimentNegative
	}
	return models.Sentiment{Label: label, Score: float64(score), HeadlineCount: len(headlines)}
}

var _ domsvc.SentimentScorer = KeywordScorer{}

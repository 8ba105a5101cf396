package models

type DashboardCard struct {
	Symbol          string  `json:"symbol"`
	LatestPrice     float64 `json:"latest_price"`
	Predicted7d     float64 `json:"predicted_7d"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// Change is the projected 7-day move in price units.
func (c DashboardCard) Change() float64 { return c.Predicted7d - c.LatestPrice }

type DashboardOverview struct {
	TopGainers     []DashboardCard `json:"top_gainers"`
	TopLosers      []DashboardCard `json:"top_losers"`
	FearGreedIndex string          `json:"fear_greed_index"`
	NewsFeed       []string        `json:"news_feed"`
}

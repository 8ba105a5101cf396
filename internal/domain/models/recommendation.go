package models

type Action string

const (
	ActionBuy  Action = "Buy"
	ActionSell Action = "Sell"
	ActionHold Action = "Hold"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

const (
	DurationShort = "1-4 weeks"
	DurationMid   = "1-3 months"
)

type Recommendation struct {
	Symbol                 string    `json:"symbol"`
	Action                 Action    `json:"action"`
	RiskLevel              RiskLevel `json:"risk_level"`
	InvestmentDuration     string    `json:"investment_duration"`
	PortfolioAllocationPct float64   `json:"portfolio_allocation_pct"`
}

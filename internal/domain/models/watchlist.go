package models

import "time"

type WatchlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Owner     string    `gorm:"index;not null" json:"-"`
	Symbol    string    `gorm:"index;not null" json:"symbol"`
	AssetType string    `gorm:"not null" json:"asset_type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (WatchlistItem) TableName() string { return "watchlist" }

type Alert struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Owner               string    `gorm:"index;not null" json:"-"`
	Symbol              string    `gorm:"index;not null" json:"symbol"`
	AssetType           string    `gorm:"not null;default:stock" json:"asset_type"`
	TargetPrice         float64   `gorm:"not null" json:"target_price"`
	PredictionThreshold *float64  `json:"prediction_threshold,omitempty"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Alert) TableName() string { return "alerts" }

// AlertEvent is emitted when an alert's condition is met by a fresh prediction.
type AlertEvent struct {
	ID                  string    `json:"id"`
	AlertID             uint      `json:"alert_id"`
	Owner               string    `json:"owner"`
	Symbol              string    `json:"symbol"`
	TargetPrice         float64   `json:"target_price"`
	LatestPrice         float64   `json:"latest_price"`
	ShortTermPrediction float64   `json:"short_term_prediction"`
	ConfidenceScore     float64   `json:"confidence_score"`
	TriggeredAt         time.Time `json:"triggered_at"`
}

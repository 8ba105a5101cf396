package models

// Requests for the HTTP endpoints. Defined in domain for reuse by the CLI.

type PredictionRequest struct {
	Symbol    string `json:"symbol" validate:"required,min=1,max=20"`
	AssetType string `json:"asset_type" validate:"required,oneof=stock crypto"`
}

type WatchlistItemCreate struct {
	Symbol    string `json:"symbol" validate:"required,min=1,max=20"`
	AssetType string `json:"asset_type" validate:"required,oneof=stock crypto"`
}

type AlertCreate struct {
	Symbol              string   `json:"symbol" validate:"required,min=1,max=20"`
	AssetType           string   `json:"asset_type" default:"stock" validate:"oneof=stock crypto"`
	TargetPrice         float64  `json:"target_price" validate:"gt=0"`
	PredictionThreshold *float64 `json:"prediction_threshold" validate:"omitempty,gte=0,lte=100"`
}

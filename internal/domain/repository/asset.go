package repository

import "strings"

// AssetType distinguishes equities from crypto pairs quoted in USD.
type AssetType string

const (
	AssetStock  AssetType = "stock"
	AssetCrypto AssetType = "crypto"
)

// IsValidAssetType returns true if t is a supported asset type.
func IsValidAssetType(t AssetType) bool {
	switch t {
	case AssetStock, AssetCrypto:
		return true
	default:
		return false
	}
}

// ParseAssetType converts a raw string, falling back to stock.
func ParseAssetType(s string) AssetType {
	t := AssetType(strings.ToLower(strings.TrimSpace(s)))
	if IsValidAssetType(t) {
		return t
	}
	return AssetStock
}

// NormalizeSymbol upper-cases the symbol and turns crypto tickers into the <SYM>-USD form.
func NormalizeSymbol(symbol string, asset AssetType) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if asset == AssetCrypto && !strings.Contains(s, "-USD") {
		return s + "-USD"
	}
	return s
}

// BaseSymbol strips the -USD quote suffix of a normalized crypto symbol.
func BaseSymbol(normalized string) string {
	return strings.TrimSuffix(normalized, "-USD")
}

package repository

import "testing"

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		symbol string
		asset  AssetType
		want   string
	}{
		{"aapl", AssetStock, "AAPL"},
		{"btc", AssetCrypto, "BTC-USD"},
		{"eth-usd", AssetCrypto, "ETH-USD"},
		{" msft ", AssetStock, "MSFT"},
		{"BTC-USD", AssetStock, "BTC-USD"},
	}
	for _, tt := range tests {
		if got := NormalizeSymbol(tt.symbol, tt.asset); got != tt.want {
			t.Errorf("NormalizeSymbol(%q, %s) = %q, want %q", tt.symbol, tt.asset, got, tt.want)
		}
	}
}

func TestParseAssetType(t *testing.T) {
	if got := ParseAssetType("Crypto"); got != AssetCrypto {
		t.Fatalf("expected crypto, got %s", got)
	}
	if got := ParseAssetType("bond"); got != AssetStock {
		t.Fatalf("expected fallback to stock, got %s", got)
	}
}

func TestBaseSymbol(t *testing.T) {
	if got := BaseSymbol("BTC-USD"); got != "BTC" {
		t.Fatalf("unexpected %q", got)
	}
}

package indicators

import "github.com/quangtran88/vnscreener/internal/contracts"

// Battery is the full set of technical indicators computed once per
// symbol per screening run.
type Battery struct {
	LastClose float64

	SMA50  float64
	EMA200 float64
	RSI14  float64

	Cloud CloudLines
	MACD  MACDResult

	Volume VolumeSpread
}

// Compute calculates the indicator battery from a price series.
// Returns nil when the series has fewer than contracts.MinBars bars;
// short series are treated as absent, never zero-filled.
func Compute(series contracts.PriceSeries) *Battery {
	if !series.Usable() {
		return nil
	}

	closes := series.Closes()

	return &Battery{
		LastClose: series.Last().Close,
		SMA50:     SMA(closes, 50),
		EMA200:    EMA(closes, 200),
		RSI14:     RSI(closes, 14),
		Cloud:     Cloud(series),
		MACD:      MACD(closes, 12, 26, 9),
		Volume:    ComputeVolumeSpread(series),
	}
}

package contracts

import "time"

// MinBars is the minimum number of daily bars required before any
// technical indicator is computed. Shorter series are treated as
// absent, never zero-filled.
const MinBars = 50

// Candle represents one daily OHLCV bar.
type Candle struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// PriceSeries is a chronologically ordered sequence of daily bars,
// ascending by date.
type PriceSeries []Candle

// Usable reports whether the series is long enough for indicator
// computation.
func (s PriceSeries) Usable() bool {
	return len(s) >= MinBars
}

// Last returns the most recent bar. Callers must check Usable first.
func (s PriceSeries) Last() Candle {
	return s[len(s)-1]
}

// Closes returns the closing price series.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, c := range s {
		closes[i] = c.Close
	}
	return closes
}

package indicators

import "github.com/quangtran88/vnscreener/internal/contracts"

// CloudLines holds the fast and slow trend-cloud lines: midpoints of
// the 9-period and 26-period high/low extremes.
type CloudLines struct {
	Fast float64 // 9-period midpoint (conversion line)
	Slow float64 // 26-period midpoint (base line)
}

// Cloud computes the trend-cloud lines from the most recent bars.
func Cloud(series contracts.PriceSeries) CloudLines {
	return CloudLines{
		Fast: rangeMidpoint(series, 9),
		Slow: rangeMidpoint(series, 26),
	}
}

// rangeMidpoint returns (highest high + lowest low) / 2 over the last
// period bars.
func rangeMidpoint(series contracts.PriceSeries, period int) float64 {
	if period <= 0 || len(series) < period {
		return 0
	}

	window := series[len(series)-period:]
	high := window[0].High
	low := window[0].Low
	for _, c := range window[1:] {
		if c.High > high {
			high = c.High
		}
		if c.Low < low {
			low = c.Low
		}
	}
	return (high + low) / 2
}

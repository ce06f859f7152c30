// Package indicators computes the technical indicator battery from a
// daily OHLCV series. Everything is batch-recomputed from the full
// series; there is no streaming update path.
package indicators

// SMA computes the simple moving average of the last period values.
// Returns 0 when there is not enough data.
func SMA(values []float64, period int) float64 {
	if period <= 0 || len(values) < period {
		return 0
	}

	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period)
}

// EMA computes the exponential moving average over the whole series
// with the given span, seeded from the first value and recursively
// smoothed with alpha = 2/(span+1). No adjustment correction is
// applied. Returns the final value.
func EMA(values []float64, span int) float64 {
	series := EMASeries(values, span)
	if len(series) == 0 {
		return 0
	}
	return series[len(series)-1]
}

// EMASeries returns the full recursive EMA series for the given span.
func EMASeries(values []float64, span int) []float64 {
	if span <= 0 || len(values) == 0 {
		return nil
	}

	alpha := 2.0 / (float64(span) + 1.0)
	series := make([]float64, len(values))
	series[0] = values[0]
	for i := 1; i < len(values); i++ {
		series[i] = alpha*values[i] + (1-alpha)*series[i-1]
	}
	return series
}

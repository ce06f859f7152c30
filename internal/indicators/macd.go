package indicators

// MACDResult holds the last two points of the 12/26/9 convergence/
// divergence scheme: main line, signal line, histogram and the
// previous histogram value for slope checks.
type MACDResult struct {
	Main     float64
	Signal   float64
	Hist     float64
	HistPrev float64
}

// MACD computes EMA(12) - EMA(26) as the main line, its EMA(9) as the
// signal line, and main - signal as the histogram.
func MACD(closes []float64, fast, slow, signal int) MACDResult {
	if len(closes) == 0 {
		return MACDResult{}
	}

	fastSeries := EMASeries(closes, fast)
	slowSeries := EMASeries(closes, slow)

	main := make([]float64, len(closes))
	for i := range closes {
		main[i] = fastSeries[i] - slowSeries[i]
	}

	signalSeries := EMASeries(main, signal)

	last := len(closes) - 1
	result := MACDResult{
		Main:   main[last],
		Signal: signalSeries[last],
		Hist:   main[last] - signalSeries[last],
	}
	if last > 0 {
		result.HistPrev = main[last-1] - signalSeries[last-1]
	}
	return result
}

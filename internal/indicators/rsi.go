package indicators

// RSI computes the relative strength index over the last period
// deltas, using plain averages of gains and losses. A window with no
// losses saturates at 100; a window with no gains reads 0.
func RSI(closes []float64, period int) float64 {
	if period <= 0 || len(closes) < period+1 {
		return 50.0 // neutral when data is insufficient
	}

	var gains, losses float64
	for i := len(closes) - period; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	if losses == 0 {
		return 100.0
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}

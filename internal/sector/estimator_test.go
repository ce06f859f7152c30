package sector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quangtran88/vnscreener/internal/contracts"
	"github.com/quangtran88/vnscreener/pkg/logger"
)

// fakeFetcher serves canned snapshots keyed by symbol code.
type fakeFetcher struct {
	ratios map[string]float64
	calls  int
}

func (f *fakeFetcher) FetchFinancials(ctx context.Context, symbol string) *contracts.FinancialSnapshot {
	f.calls++
	pe, ok := f.ratios[symbol]
	if !ok {
		return nil
	}
	return &contracts.FinancialSnapshot{
		Symbol: symbol,
		PE:     pe,
		Periods: []contracts.FinancialPeriod{
			{Year: 2025}, {Year: 2024},
		},
	}
}

func bankUniverse(codes ...string) *contracts.Universe {
	symbols := make([]contracts.Symbol, len(codes))
	for i, code := range codes {
		symbols[i] = contracts.Symbol{Code: code, Sector: "Ngân hàng"}
	}
	return &contracts.Universe{Symbols: symbols}
}

func TestEstimator_MedianPE(t *testing.T) {
	fetcher := &fakeFetcher{ratios: map[string]float64{
		"VCB": 14, "BID": 10, "CTG": 12, "TCB": 8, "MBB": 16,
	}}
	e := NewEstimator(fetcher, logger.NewNop())

	pe, ok := e.MedianPE(context.Background(), "Ngân hàng", bankUniverse("VCB", "BID", "CTG", "TCB", "MBB"))

	assert.True(t, ok)
	assert.Equal(t, 12.0, pe)
}

func TestEstimator_MedianPE_EvenCount(t *testing.T) {
	fetcher := &fakeFetcher{ratios: map[string]float64{
		"VCB": 10, "BID": 12, "CTG": 14, "TCB": 16,
	}}
	e := NewEstimator(fetcher, logger.NewNop())

	pe, ok := e.MedianPE(context.Background(), "Ngân hàng", bankUniverse("VCB", "BID", "CTG", "TCB"))

	assert.True(t, ok)
	assert.Equal(t, 13.0, pe)
}

func TestEstimator_MedianPE_TooFewPeers(t *testing.T) {
	fetcher := &fakeFetcher{ratios: map[string]float64{"VCB": 14, "BID": 10}}
	e := NewEstimator(fetcher, logger.NewNop())

	_, ok := e.MedianPE(context.Background(), "Ngân hàng", bankUniverse("VCB", "BID"))

	assert.False(t, ok, "fewer than three peers must not yield a benchmark")
	assert.Zero(t, fetcher.calls, "no fetches should happen for a thin sector")
}

func TestEstimator_MedianPE_SkipsUnusableRatios(t *testing.T) {
	// One peer has no snapshot and one has a negative ratio; the
	// median comes from the remaining two.
	fetcher := &fakeFetcher{ratios: map[string]float64{
		"VCB": 10, "BID": 14, "CTG": -3,
	}}
	e := NewEstimator(fetcher, logger.NewNop())

	pe, ok := e.MedianPE(context.Background(), "Ngân hàng", bankUniverse("VCB", "BID", "CTG", "TCB"))

	assert.True(t, ok)
	assert.Equal(t, 12.0, pe)
}

func TestEstimator_MedianPE_NoUsableRatios(t *testing.T) {
	fetcher := &fakeFetcher{ratios: map[string]float64{}}
	e := NewEstimator(fetcher, logger.NewNop())

	_, ok := e.MedianPE(context.Background(), "Ngân hàng", bankUniverse("VCB", "BID", "CTG"))

	assert.False(t, ok)
}

func TestEstimator_MedianPE_SampleIsBounded(t *testing.T) {
	ratios := map[string]float64{}
	codes := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		code := string(rune('A'+i/10)) + string(rune('A'+i%10))
		codes = append(codes, code)
		ratios[code] = float64(10 + i)
	}

	fetcher := &fakeFetcher{ratios: ratios}
	e := NewEstimator(fetcher, logger.NewNop())

	_, ok := e.MedianPE(context.Background(), "Ngân hàng", bankUniverse(codes...))

	assert.True(t, ok)
	assert.LessOrEqual(t, fetcher.calls, sampleSize, "peer fetches must stay within the sample bound")
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 3.0, median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, median([]float64{4, 1, 2, 3}))
	assert.Equal(t, 7.0, median([]float64{7}))
}

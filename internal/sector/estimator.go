// Package sector computes sector-relative valuation benchmarks from a
// sampled peer set.
package sector

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/quangtran88/vnscreener/internal/contracts"
	"github.com/quangtran88/vnscreener/pkg/logger"
)

// Estimator peer sampling bounds. Fetching financials for an entire
// sector is too slow against the public API, so the benchmark is
// computed from a small random sample.
const (
	minPeers   = 3
	sampleSize = 10
)

// FinancialsFetcher is the slice of the fetch gateway the estimator
// needs: a cache-aware financials lookup that returns nil on absence.
type FinancialsFetcher interface {
	FetchFinancials(ctx context.Context, symbol string) *contracts.FinancialSnapshot
}

// Estimator computes the median price/earnings ratio of a sector from
// a sampled peer set.
type Estimator struct {
	fetcher FinancialsFetcher
	logger  *logger.Logger

	mu   sync.Mutex
	rand *rand.Rand
}

// NewEstimator creates a new estimator.
func NewEstimator(fetcher FinancialsFetcher, log *logger.Logger) *Estimator {
	return &Estimator{
		fetcher: fetcher,
		logger:  log.WithField("module", "sector"),
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// MedianPE returns the median P/E over a sampled subset of the
// sector's peers. The second return is false when fewer than three
// peers exist or no peer has a usable ratio: a benchmark is never
// fabricated from a thin sample.
func (e *Estimator) MedianPE(ctx context.Context, sector string, universe *contracts.Universe) (float64, bool) {
	peers := universe.SectorPeers(sector)
	if len(peers) < minPeers {
		e.logger.WithFields(map[string]interface{}{
			"sector": sector,
			"peers":  len(peers),
		}).Debug("Too few peers for benchmark")
		return 0, false
	}

	sample := e.samplePeers(peers)

	ratios := make([]float64, 0, len(sample))
	for _, peer := range sample {
		if ctx.Err() != nil {
			return 0, false
		}

		snapshot := e.fetcher.FetchFinancials(ctx, peer.Code)
		if snapshot == nil || snapshot.PE <= 0 {
			continue
		}
		ratios = append(ratios, snapshot.PE)
	}

	if len(ratios) == 0 {
		e.logger.WithField("sector", sector).Debug("No usable peer ratios")
		return 0, false
	}

	median := median(ratios)

	e.logger.WithFields(map[string]interface{}{
		"sector":    sector,
		"sampled":   len(sample),
		"usable":    len(ratios),
		"median_pe": median,
	}).Debug("Computed sector benchmark")

	return median, true
}

// samplePeers picks up to sampleSize peers uniformly at random.
func (e *Estimator) samplePeers(peers []contracts.Symbol) []contracts.Symbol {
	if len(peers) <= sampleSize {
		return peers
	}

	e.mu.Lock()
	idx := e.rand.Perm(len(peers))
	e.mu.Unlock()

	sample := make([]contracts.Symbol, sampleSize)
	for i := 0; i < sampleSize; i++ {
		sample[i] = peers[idx[i]]
	}
	return sample
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

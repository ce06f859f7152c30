// Package screening paginates the candidate universe, fans scoring
// out across a bounded worker pool and aggregates a ranked result
// list, degrading per-symbol on failure.
package screening

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quangtran88/vnscreener/internal/contracts"
	"github.com/quangtran88/vnscreener/internal/indicators"
	"github.com/quangtran88/vnscreener/internal/scoring"
	"github.com/quangtran88/vnscreener/pkg/logger"
)

// DataSource is the slice of the fetch gateway the orchestrator
// consumes. Fetch methods return nil on absence and never error.
type DataSource interface {
	ListUniverse(ctx context.Context) (*contracts.Universe, error)
	FetchFinancials(ctx context.Context, symbol string) *contracts.FinancialSnapshot
	FetchPriceSeries(ctx context.Context, symbol string, from, to time.Time) contracts.PriceSeries
}

// BenchmarkProvider computes the sector valuation benchmark.
type BenchmarkProvider interface {
	MedianPE(ctx context.Context, sector string, universe *contracts.Universe) (float64, bool)
}

// Config holds orchestrator settings.
type Config struct {
	Workers      int
	DefaultLimit int
	LookbackDays int
}

// DefaultConfig returns the default orchestrator configuration.
func DefaultConfig() Config {
	return Config{
		Workers:      6,
		DefaultLimit: 20,
		LookbackDays: 365,
	}
}

// Orchestrator runs a screening pass over a page of the universe.
type Orchestrator struct {
	source    DataSource
	benchmark BenchmarkProvider
	scorer    *scoring.Scorer
	config    Config
	logger    *logger.Logger
}

// New creates a new orchestrator.
func New(source DataSource, benchmark BenchmarkProvider, scorer *scoring.Scorer, cfg Config, log *logger.Logger) *Orchestrator {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultConfig().Workers
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = DefaultConfig().DefaultLimit
	}
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = DefaultConfig().LookbackDays
	}

	return &Orchestrator{
		source:    source,
		benchmark: benchmark,
		scorer:    scorer,
		config:    cfg,
		logger:    log.WithField("module", "screening"),
	}
}

// Run screens one page of the universe and returns results sorted
// descending by total score. Ties retain upstream symbol order. Every
// requested symbol produces exactly one row; per-symbol failures
// degrade to no-data or error rows and never abort the batch.
func (o *Orchestrator) Run(ctx context.Context, limit, page int) ([]contracts.ScoreResult, error) {
	if limit <= 0 {
		limit = o.config.DefaultLimit
	}
	if page < 1 {
		page = 1
	}

	runID := uuid.NewString()[:8]
	log := o.logger.WithField("run_id", runID)
	started := time.Now()

	universe, err := o.source.ListUniverse(ctx)
	if err != nil {
		log.WithError(err).Error("Universe fetch failed, nothing to screen")
		return nil, fmt.Errorf("list universe: %w", err)
	}

	symbols := universe.Page(limit, page)

	log.WithFields(map[string]interface{}{
		"universe": universe.Count(),
		"limit":    limit,
		"page":     page,
		"symbols":  len(symbols),
		"workers":  o.config.Workers,
	}).Info("Starting screening run")

	results := make([]contracts.ScoreResult, len(symbols))
	benchmarks := newBenchmarkCache(o.benchmark)

	type task struct {
		idx int
		sym contracts.Symbol
	}

	taskCh := make(chan task, len(symbols))
	var wg sync.WaitGroup

	for w := 0; w < o.config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range taskCh {
				results[t.idx] = *o.scoreSymbol(ctx, t.sym, universe, benchmarks, log)
			}
		}()
	}

	for i, sym := range symbols {
		taskCh <- task{idx: i, sym: sym}
	}
	close(taskCh)
	wg.Wait()

	// Stable sort keeps upstream symbol order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Total > results[j].Total
	})

	ok, noData, failed := 0, 0, 0
	for _, r := range results {
		switch r.Status {
		case contracts.StatusOK:
			ok++
		case contracts.StatusNoData:
			noData++
		default:
			failed++
		}
	}

	log.WithFields(map[string]interface{}{
		"scored":   ok,
		"no_data":  noData,
		"errors":   failed,
		"duration": time.Since(started),
	}).Info("Screening run completed")

	return results, nil
}

// scoreSymbol runs the full per-symbol pipeline. A panic anywhere in
// the pipeline is converted into an error row for this symbol only.
func (o *Orchestrator) scoreSymbol(ctx context.Context, sym contracts.Symbol, universe *contracts.Universe, benchmarks *benchmarkCache, log *logger.Logger) (result *contracts.ScoreResult) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(map[string]interface{}{
				"symbol": sym.Code,
				"panic":  r,
			}).Error("Scoring task panicked")
			result = scoring.ErrorResult(sym)
		}
	}()

	snapshot := o.source.FetchFinancials(ctx, sym.Code)

	to := time.Now()
	from := to.AddDate(0, 0, -o.config.LookbackDays)
	series := o.source.FetchPriceSeries(ctx, sym.Code, from, to)
	battery := indicators.Compute(series)

	if snapshot == nil && battery == nil {
		return scoring.NoDataResult(sym)
	}

	benchmarkPE := 0.0
	if snapshot != nil {
		benchmarkPE = benchmarks.get(ctx, sym.Sector, universe)
	}

	return o.scorer.Score(sym, snapshot, battery, benchmarkPE)
}

// benchmarkCache memoizes sector benchmarks for the duration of one
// run so workers screening the same sector do not refetch the peer
// sample.
type benchmarkCache struct {
	provider BenchmarkProvider

	mu      sync.Mutex
	entries map[string]float64
}

func newBenchmarkCache(provider BenchmarkProvider) *benchmarkCache {
	return &benchmarkCache{
		provider: provider,
		entries:  make(map[string]float64),
	}
}

// get returns the memoized benchmark for a sector; 0 means absent.
func (c *benchmarkCache) get(ctx context.Context, sector string, universe *contracts.Universe) float64 {
	if sector == "" {
		return 0
	}

	c.mu.Lock()
	cached, ok := c.entries[sector]
	c.mu.Unlock()
	if ok {
		return cached
	}

	value := 0.0
	if pe, found := c.provider.MedianPE(ctx, sector, universe); found {
		value = pe
	}

	c.mu.Lock()
	c.entries[sector] = value
	c.mu.Unlock()

	return value
}

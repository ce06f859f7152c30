// Package marketdata wraps the upstream provider with the retry,
// pacing and caching policy of the screener. It is the only component
// that talks to the provider.
package marketdata

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/quangtran88/vnscreener/internal/contracts"
	"github.com/quangtran88/vnscreener/internal/fincache"
	"github.com/quangtran88/vnscreener/pkg/config"
	"github.com/quangtran88/vnscreener/pkg/httputil"
	"github.com/quangtran88/vnscreener/pkg/logger"
)

// Provider is the upstream data capability. Every operation may fail
// or return nothing; the gateway absorbs both.
type Provider interface {
	ListUniverse(ctx context.Context) ([]contracts.Symbol, error)
	FetchFinancials(ctx context.Context, symbol string) (*contracts.FinancialSnapshot, error)
	FetchPriceSeries(ctx context.Context, symbol string, from, to time.Time, resolution string) (contracts.PriceSeries, error)
}

// RetryPolicy is the bounded retry/backoff schedule applied to every
// upstream operation, independent of any concurrency primitive.
type RetryPolicy struct {
	MaxAttempts int
	BackoffStep time.Duration
	JitterFloor time.Duration
	JitterCeil  time.Duration
}

// DefaultRetryPolicy returns the policy used against the public API.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BackoffStep: 500 * time.Millisecond,
		JitterFloor: 50 * time.Millisecond,
		JitterCeil:  250 * time.Millisecond,
	}
}

// Gateway is the fetch boundary of the screener. Data-fetch methods
// never return an error: any transport, parsing or empty-result
// condition collapses to nil after the retry budget is spent, so one
// symbol's failure can never abort a batch.
type Gateway struct {
	provider Provider
	store    fincache.Store
	policy   RetryPolicy
	logger   *logger.Logger

	mu   sync.Mutex
	rand *rand.Rand
}

// New creates a gateway from config.
func New(provider Provider, store fincache.Store, cfg *config.Config, log *logger.Logger) *Gateway {
	policy := RetryPolicy{
		MaxAttempts: cfg.Provider.MaxRetries,
		BackoffStep: cfg.Provider.BackoffStep,
		JitterFloor: cfg.Provider.JitterFloor,
		JitterCeil:  cfg.Provider.JitterCeil,
	}
	return NewWithPolicy(provider, store, policy, log)
}

// NewWithPolicy creates a gateway with an explicit retry policy.
func NewWithPolicy(provider Provider, store fincache.Store, policy RetryPolicy, log *logger.Logger) *Gateway {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}

	return &Gateway{
		provider: provider,
		store:    store,
		policy:   policy,
		logger:   log.WithField("module", "marketdata"),
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ListUniverse returns the candidate universe. This is the one
// operation whose failure is surfaced: without a universe there is
// nothing to screen.
func (g *Gateway) ListUniverse(ctx context.Context) (*contracts.Universe, error) {
	var symbols []contracts.Symbol

	err := g.withRetry(ctx, "list_universe", "", func() error {
		var err error
		symbols, err = g.provider.ListUniverse(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &contracts.Universe{Symbols: symbols}, nil
}

// FetchFinancials returns the financial snapshot for a symbol, or nil
// when no complete snapshot could be obtained. Reads through the
// cache; a fresh fetch overwrites the cached entry best-effort.
func (g *Gateway) FetchFinancials(ctx context.Context, symbol string) *contracts.FinancialSnapshot {
	if cached := g.store.Get(ctx, symbol); cached != nil {
		g.logger.WithField("symbol", symbol).Debug("Financials cache hit")
		return cached
	}

	var snapshot *contracts.FinancialSnapshot
	err := g.withRetry(ctx, "fetch_financials", symbol, func() error {
		var err error
		snapshot, err = g.provider.FetchFinancials(ctx, symbol)
		return err
	})
	if err != nil || !snapshot.Valid() {
		return nil
	}

	g.store.Put(ctx, symbol, snapshot)
	return snapshot
}

// FetchPriceSeries returns the daily bars for a symbol, or nil when
// nothing usable came back. The indicator engine applies its own
// minimum-length gate; the gateway only collapses failures and empty
// responses.
func (g *Gateway) FetchPriceSeries(ctx context.Context, symbol string, from, to time.Time) contracts.PriceSeries {
	var series contracts.PriceSeries

	err := g.withRetry(ctx, "fetch_prices", symbol, func() error {
		var err error
		series, err = g.provider.FetchPriceSeries(ctx, symbol, from, to, "D")
		return err
	})
	if err != nil || len(series) == 0 {
		return nil
	}

	return series
}

// withRetry runs op up to MaxAttempts times. Every attempt is
// preceded by a randomized jitter delay to avoid hammering the
// provider in lockstep from concurrent workers; failed attempts back
// off by an additional BackoffStep per attempt.
func (g *Gateway) withRetry(ctx context.Context, op, symbol string, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= g.policy.MaxAttempts; attempt++ {
		if err := g.sleep(ctx, g.jitter()); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if !retryable(lastErr) {
			g.logger.WithError(lastErr).WithFields(map[string]interface{}{
				"op":     op,
				"symbol": symbol,
			}).Warn("Upstream rejected request, not retrying")
			return lastErr
		}

		if attempt < g.policy.MaxAttempts {
			backoff := time.Duration(attempt) * g.policy.BackoffStep
			g.logger.WithError(lastErr).WithFields(map[string]interface{}{
				"op":      op,
				"symbol":  symbol,
				"attempt": attempt,
				"backoff": backoff,
			}).Warn("Upstream fetch failed, retrying")

			if err := g.sleep(ctx, backoff); err != nil {
				return err
			}
		}
	}

	g.logger.WithError(lastErr).WithFields(map[string]interface{}{
		"op":     op,
		"symbol": symbol,
	}).Warn("Upstream fetch exhausted retries")

	return lastErr
}

// retryable reports whether an error is worth another attempt.
// Definitive upstream rejections (4xx other than 429) will not change
// on a retry; transport errors and server-side failures may.
func retryable(err error) bool {
	var statusErr *httputil.StatusError
	if errors.As(err, &statusErr) {
		return httputil.IsRetryableStatus(statusErr.StatusCode)
	}
	return true
}

func (g *Gateway) jitter() time.Duration {
	span := g.policy.JitterCeil - g.policy.JitterFloor
	if span <= 0 {
		return g.policy.JitterFloor
	}

	g.mu.Lock()
	d := g.policy.JitterFloor + time.Duration(g.rand.Int63n(int64(span)))
	g.mu.Unlock()
	return d
}

func (g *Gateway) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Package fincache provides a keyed, time-expiring store for
// fundamental data fetch results, cutting redundant upstream calls
// across screening runs.
package fincache

import (
	"context"

	"github.com/quangtran88/vnscreener/internal/contracts"
)

// Store is the cache capability injected into the fetch gateway.
// Implementations must be safe for concurrent use by multiple
// workers; last-writer-wins semantics are acceptable because entries
// are idempotent recomputations of the same upstream truth.
type Store interface {
	// Get returns the cached snapshot for a symbol, or nil on a miss.
	// An expired entry is a transparent miss, never an error.
	Get(ctx context.Context, symbol string) *contracts.FinancialSnapshot

	// Put stores a snapshot. Writes are best-effort: a storage
	// failure is logged by the implementation and swallowed.
	Put(ctx context.Context, symbol string, snapshot *contracts.FinancialSnapshot)

	// Expire removes entries older than the TTL and returns how many
	// were removed.
	Expire(ctx context.Context) int
}

package fincache

import (
	"context"
	"sync"
	"time"

	"github.com/quangtran88/vnscreener/internal/contracts"
)

// MemStore is an in-memory Store used by tests and one-shot runs that
// should not touch the filesystem.
type MemStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memEntry
}

type memEntry struct {
	storedAt time.Time
	snapshot *contracts.FinancialSnapshot
}

// NewMemStore creates an in-memory store.
func NewMemStore(ttl time.Duration) *MemStore {
	return &MemStore{
		ttl:     ttl,
		entries: make(map[string]memEntry),
	}
}

// Get returns the cached snapshot or nil on a miss.
func (s *MemStore) Get(ctx context.Context, symbol string) *contracts.FinancialSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[symbol]
	if !ok || time.Since(e.storedAt) >= s.ttl {
		return nil
	}
	return e.snapshot
}

// Put stores a snapshot.
func (s *MemStore) Put(ctx context.Context, symbol string, snapshot *contracts.FinancialSnapshot) {
	if snapshot == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[symbol] = memEntry{storedAt: time.Now(), snapshot: snapshot}
}

// Expire removes entries past the TTL.
func (s *MemStore) Expire(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for symbol, e := range s.entries {
		if time.Since(e.storedAt) >= s.ttl {
			delete(s.entries, symbol)
			removed++
		}
	}
	return removed
}

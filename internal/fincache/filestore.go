package fincache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/quangtran88/vnscreener/internal/contracts"
	"github.com/quangtran88/vnscreener/pkg/logger"
)

// FileStore keeps one JSON file per symbol under a cache directory.
// Entries are disposable: anything that fails to decode is treated as
// a miss and overwritten on the next fetch, so schema drift costs an
// extra fetch, never a hard failure.
type FileStore struct {
	dir    string
	ttl    time.Duration
	logger *logger.Logger
}

// entry is the on-disk envelope around a snapshot.
type entry struct {
	StoredAt time.Time                    `json:"stored_at"`
	Snapshot *contracts.FinancialSnapshot `json:"snapshot"`
}

// NewFileStore creates a file-backed store rooted at dir.
func NewFileStore(dir string, ttl time.Duration, log *logger.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	return &FileStore{
		dir:    dir,
		ttl:    ttl,
		logger: log.WithField("module", "fincache"),
	}, nil
}

// Get returns the cached snapshot for a symbol, or nil on a miss or
// an expired entry.
func (s *FileStore) Get(ctx context.Context, symbol string) *contracts.FinancialSnapshot {
	data, err := os.ReadFile(s.path(symbol))
	if err != nil {
		return nil
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		s.logger.WithError(err).WithField("symbol", symbol).Debug("Discarding undecodable cache entry")
		return nil
	}

	if time.Since(e.StoredAt) >= s.ttl {
		return nil
	}

	return e.Snapshot
}

// Put stores a snapshot. The write goes to a temp file first and is
// renamed into place so concurrent readers never observe a torn
// entry. Failures are swallowed.
func (s *FileStore) Put(ctx context.Context, symbol string, snapshot *contracts.FinancialSnapshot) {
	if snapshot == nil {
		return
	}

	data, err := json.Marshal(entry{StoredAt: time.Now(), Snapshot: snapshot})
	if err != nil {
		s.logger.WithError(err).WithField("symbol", symbol).Warn("Cache marshal failed")
		return
	}

	tmp, err := os.CreateTemp(s.dir, symbol+".*.tmp")
	if err != nil {
		s.logger.WithError(err).WithField("symbol", symbol).Warn("Cache write failed")
		return
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		s.logger.WithError(err).WithField("symbol", symbol).Warn("Cache write failed")
		return
	}
	tmp.Close()

	if err := os.Rename(tmp.Name(), s.path(symbol)); err != nil {
		os.Remove(tmp.Name())
		s.logger.WithError(err).WithField("symbol", symbol).Warn("Cache rename failed")
	}
}

// Expire removes entries past the TTL, plus any leftover temp files.
func (s *FileStore) Expire(ctx context.Context) int {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.WithError(err).Warn("Cache dir scan failed")
		return 0
	}

	removed := 0
	for _, dirEntry := range entries {
		if dirEntry.IsDir() {
			continue
		}

		name := dirEntry.Name()
		full := filepath.Join(s.dir, name)

		if strings.HasSuffix(name, ".tmp") {
			if info, err := dirEntry.Info(); err == nil && time.Since(info.ModTime()) > time.Hour {
				if os.Remove(full) == nil {
					removed++
				}
			}
			continue
		}

		data, err := os.ReadFile(full)
		if err != nil {
			continue
		}

		var e entry
		if err := json.Unmarshal(data, &e); err != nil || time.Since(e.StoredAt) >= s.ttl {
			if os.Remove(full) == nil {
				removed++
			}
		}
	}

	if removed > 0 {
		s.logger.WithField("removed", removed).Info("Expired cache entries")
	}

	return removed
}

func (s *FileStore) path(symbol string) string {
	return filepath.Join(s.dir, symbol+".json")
}

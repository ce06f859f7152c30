package jobs

import (
	"context"

	"github.com/quangtran88/vnscreener/internal/fincache"
	"github.com/quangtran88/vnscreener/pkg/logger"
)

// CacheSweepJob removes expired entries from the financials cache.
type CacheSweepJob struct {
	store  fincache.Store
	logger *logger.Logger
}

// NewCacheSweepJob creates a new cache sweep job.
func NewCacheSweepJob(store fincache.Store, log *logger.Logger) *CacheSweepJob {
	return &CacheSweepJob{
		store:  store,
		logger: log,
	}
}

// Name returns the job name.
func (j *CacheSweepJob) Name() string {
	return "cache_sweep"
}

// Schedule runs at the top of every hour.
func (j *CacheSweepJob) Schedule() string {
	return "0 0 * * * *"
}

// Run executes the sweep.
func (j *CacheSweepJob) Run(ctx context.Context) error {
	removed := j.store.Expire(ctx)

	if removed > 0 {
		j.logger.WithField("removed", removed).Info("Cache sweep completed")
	} else {
		j.logger.Debug("Cache sweep found nothing to remove")
	}

	return nil
}

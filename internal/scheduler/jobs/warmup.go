// Package jobs holds the concrete scheduled jobs of the screener.
package jobs

import (
	"context"
	"time"

	"github.com/quangtran88/vnscreener/internal/contracts"
	"github.com/quangtran88/vnscreener/pkg/logger"
)

// Screener runs a full screening pass. Satisfied by
// *screening.Orchestrator.
type Screener interface {
	Run(ctx context.Context, limit, page int) ([]contracts.ScoreResult, error)
}

// WarmupJob runs an after-close screening pass over the whole
// universe so the financials cache is hot before the next trading day.
type WarmupJob struct {
	screener Screener
	logger   *logger.Logger
	timeout  time.Duration
}

// NewWarmupJob creates a new warm-up job.
func NewWarmupJob(screener Screener, log *logger.Logger) *WarmupJob {
	return &WarmupJob{
		screener: screener,
		logger:   log,
		timeout:  30 * time.Minute,
	}
}

// Name returns the job name.
func (j *WarmupJob) Name() string {
	return "screening_warmup"
}

// Schedule runs at 18:30 every weekday, after the HOSE close.
func (j *WarmupJob) Schedule() string {
	return "0 30 18 * * MON-FRI"
}

// Run executes the warm-up pass.
func (j *WarmupJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	// A huge limit covers the whole universe in one page.
	results, err := j.screener.Run(ctx, 10000, 1)
	if err != nil {
		return err
	}

	scored := 0
	for _, r := range results {
		if r.Status == contracts.StatusOK {
			scored++
		}
	}

	j.logger.WithFields(map[string]interface{}{
		"total":  len(results),
		"scored": scored,
	}).Info("Warm-up screening pass completed")

	return nil
}

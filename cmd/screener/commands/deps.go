package commands

import (
	"fmt"

	"github.com/quangtran88/vnscreener/internal/external/tcbs"
	"github.com/quangtran88/vnscreener/internal/fincache"
	"github.com/quangtran88/vnscreener/internal/marketdata"
	"github.com/quangtran88/vnscreener/internal/scoring"
	"github.com/quangtran88/vnscreener/internal/screening"
	"github.com/quangtran88/vnscreener/internal/sector"
	"github.com/quangtran88/vnscreener/pkg/config"
	"github.com/quangtran88/vnscreener/pkg/httputil"
	"github.com/quangtran88/vnscreener/pkg/logger"
)

// stack is the wired-up screening pipeline shared by the commands.
type stack struct {
	cfg          *config.Config
	log          *logger.Logger
	store        fincache.Store
	gateway      *marketdata.Gateway
	orchestrator *screening.Orchestrator
}

// buildStack wires config, logger, provider client, cache, gateway,
// benchmark estimator and orchestrator in dependency order.
func buildStack() (*stack, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	httpClient := httputil.New(cfg, log)
	provider := tcbs.NewClient(httpClient, cfg.Provider.BaseURL, log)

	store, err := fincache.NewFileStore(cfg.Cache.Dir, cfg.Cache.TTL, log)
	if err != nil {
		return nil, fmt.Errorf("open financials cache: %w", err)
	}

	gateway := marketdata.New(provider, store, cfg, log)
	estimator := sector.NewEstimator(gateway, log)
	scorer := scoring.NewScorer(log)

	orchestrator := screening.New(gateway, estimator, scorer, screening.Config{
		Workers:      cfg.Screener.Workers,
		DefaultLimit: cfg.Screener.DefaultLimit,
		LookbackDays: cfg.Screener.LookbackDays,
	}, log)

	return &stack{
		cfg:          cfg,
		log:          log,
		store:        store,
		gateway:      gateway,
		orchestrator: orchestrator,
	}, nil
}

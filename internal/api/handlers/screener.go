package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/quangtran88/vnscreener/internal/contracts"
	"github.com/quangtran88/vnscreener/pkg/logger"
)

// Screener runs a screening pass. Satisfied by
// *screening.Orchestrator.
type Screener interface {
	Run(ctx context.Context, limit, page int) ([]contracts.ScoreResult, error)
}

// ScreenerHandler handles the screening API endpoint.
type ScreenerHandler struct {
	screener Screener
	logger   *logger.Logger
}

// NewScreenerHandler creates a new screener handler.
func NewScreenerHandler(screener Screener, log *logger.Logger) *ScreenerHandler {
	return &ScreenerHandler{
		screener: screener,
		logger:   log,
	}
}

// Run executes a screening run.
// GET /api/screener/quant?limit=20&page=1
func (h *ScreenerHandler) Run(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := parseIntParam(r, "limit", 0)
	page := parseIntParam(r, "page", 1)

	results, err := h.screener.Run(ctx, limit, page)
	if err != nil {
		h.logger.WithError(err).Error("Screening run failed")
		respondError(w, http.StatusBadGateway, "screening run failed: no candidate universe")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(results),
		"data":  results,
	})
}

func parseIntParam(r *http.Request, name string, defaultValue int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

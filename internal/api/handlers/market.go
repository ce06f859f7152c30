package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/quangtran88/vnscreener/internal/contracts"
	"github.com/quangtran88/vnscreener/pkg/logger"
)

// MarketData is the slice of the fetch gateway the market endpoints
// consume.
type MarketData interface {
	ListUniverse(ctx context.Context) (*contracts.Universe, error)
	FetchPriceSeries(ctx context.Context, symbol string, from, to time.Time) contracts.PriceSeries
}

// MarketHandler handles ticker list and price history endpoints.
type MarketHandler struct {
	source MarketData
	logger *logger.Logger
}

// NewMarketHandler creates a new market handler.
func NewMarketHandler(source MarketData, log *logger.Logger) *MarketHandler {
	return &MarketHandler{
		source: source,
		logger: log,
	}
}

// GetTickers returns the candidate universe.
// GET /api/tickers
func (h *MarketHandler) GetTickers(w http.ResponseWriter, r *http.Request) {
	universe, err := h.source.ListUniverse(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list universe")
		respondError(w, http.StatusBadGateway, "ticker list unavailable")
		return
	}

	sectors := make(map[string]struct{})
	for _, s := range universe.Symbols {
		if s.Sector != "" {
			sectors[s.Sector] = struct{}{}
		}
	}

	sectorList := make([]string, 0, len(sectors))
	for s := range sectors {
		sectorList = append(sectorList, s)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"tickers": universe.Symbols,
		"count":   universe.Count(),
		"sectors": sectorList,
	})
}

// priceResponse is one daily bar in API form.
type priceResponse struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// GetHistory returns daily bars for a ticker.
// GET /api/history/{ticker}?days=90
func (h *MarketHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(mux.Vars(r)["ticker"])
	if ticker == "" {
		respondError(w, http.StatusBadRequest, "ticker is required")
		return
	}

	days := parseIntParam(r, "days", 90)
	if days <= 0 {
		days = 90
	}

	to := time.Now()
	from := to.AddDate(0, 0, -days)

	series := h.source.FetchPriceSeries(r.Context(), ticker, from, to)

	bars := make([]priceResponse, len(series))
	for i, c := range series {
		bars[i] = priceResponse{
			Date:   c.Date.Format("2006-01-02"),
			Open:   c.Open,
			High:   c.High,
			Low:    c.Low,
			Close:  c.Close,
			Volume: c.Volume,
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ticker": ticker,
		"data":   bars,
	})
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangtran88/vnscreener/internal/api/handlers"
	"github.com/quangtran88/vnscreener/internal/contracts"
	"github.com/quangtran88/vnscreener/pkg/logger"
)

type noopScreener struct{}

func (noopScreener) Run(ctx context.Context, limit, page int) ([]contracts.ScoreResult, error) {
	return nil, nil
}

type noopMarket struct{}

func (noopMarket) ListUniverse(ctx context.Context) (*contracts.Universe, error) {
	return &contracts.Universe{}, nil
}

func (noopMarket) FetchPriceSeries(ctx context.Context, symbol string, from, to time.Time) contracts.PriceSeries {
	return nil
}

func newTestRouter() http.Handler {
	log := logger.NewNop()
	return NewRouter(
		handlers.NewScreenerHandler(noopScreener{}, log),
		handlers.NewMarketHandler(noopMarket{}, log),
		NewQuoteHub(noopMarket{}, time.Second, log),
		log,
	)
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		path string
		want int
	}{
		{path: "/api/screener/quant", want: http.StatusOK},
		{path: "/api/tickers", want: http.StatusOK},
		{path: "/nope", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)
		assert.Equal(t, tt.want, rec.Code, "path %s", tt.path)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/tickers", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

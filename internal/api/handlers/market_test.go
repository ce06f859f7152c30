package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangtran88/vnscreener/internal/contracts"
	"github.com/quangtran88/vnscreener/pkg/logger"
)

type fakeMarketData struct {
	universe    *contracts.Universe
	universeErr error

	historyTicker string
	series        contracts.PriceSeries
}

func (f *fakeMarketData) ListUniverse(ctx context.Context) (*contracts.Universe, error) {
	return f.universe, f.universeErr
}

func (f *fakeMarketData) FetchPriceSeries(ctx context.Context, symbol string, from, to time.Time) contracts.PriceSeries {
	f.historyTicker = symbol
	return f.series
}

func TestMarketHandler_GetTickers(t *testing.T) {
	source := &fakeMarketData{
		universe: &contracts.Universe{Symbols: []contracts.Symbol{
			{Code: "VCB", Sector: "Ngân hàng"},
			{Code: "BID", Sector: "Ngân hàng"},
			{Code: "FPT", Sector: "Công nghệ"},
		}},
	}
	handler := NewMarketHandler(source, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/tickers", nil)
	rec := httptest.NewRecorder()

	handler.GetTickers(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Tickers []contracts.Symbol `json:"tickers"`
		Count   int                `json:"count"`
		Sectors []string           `json:"sectors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Count)
	assert.Len(t, body.Tickers, 3)
	assert.Len(t, body.Sectors, 2, "sector list is distinct")
}

func TestMarketHandler_GetTickers_UpstreamFailure(t *testing.T) {
	source := &fakeMarketData{universeErr: errors.New("down")}
	handler := NewMarketHandler(source, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/tickers", nil)
	rec := httptest.NewRecorder()

	handler.GetTickers(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestMarketHandler_GetHistory(t *testing.T) {
	source := &fakeMarketData{
		series: contracts.PriceSeries{
			{Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), Open: 90, High: 92, Low: 89, Close: 91, Volume: 1000},
		},
	}
	handler := NewMarketHandler(source, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/history/vcb?days=30", nil)
	req = mux.SetURLVars(req, map[string]string{"ticker": "vcb"})
	rec := httptest.NewRecorder()

	handler.GetHistory(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "VCB", source.historyTicker, "ticker is uppercased before the fetch")

	var body struct {
		Ticker string `json:"ticker"`
		Data   []struct {
			Date  string  `json:"date"`
			Close float64 `json:"close"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VCB", body.Ticker)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "2026-01-05", body.Data[0].Date)
	assert.Equal(t, 91.0, body.Data[0].Close)
}

func TestMarketHandler_GetHistory_MissingTicker(t *testing.T) {
	handler := NewMarketHandler(&fakeMarketData{}, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/history/", nil)
	rec := httptest.NewRecorder()

	handler.GetHistory(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarketHandler_GetHistory_EmptySeries(t *testing.T) {
	source := &fakeMarketData{}
	handler := NewMarketHandler(source, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/history/XYZ", nil)
	req = mux.SetURLVars(req, map[string]string{"ticker": "XYZ"})
	rec := httptest.NewRecorder()

	handler.GetHistory(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Data, "no history is an empty list, not an error")
}

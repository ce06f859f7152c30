package tcbs

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"github.com/quangtran88/vnscreener/internal/contracts"
)

// FetchPriceSeries fetches daily OHLCV bars for a symbol. Bars are
// returned ascending by date.
func (c *Client) FetchPriceSeries(ctx context.Context, symbol string, from, to time.Time, resolution string) (contracts.PriceSeries, error) {
	if resolution == "" {
		resolution = "D"
	}

	params := url.Values{}
	params.Set("ticker", symbol)
	params.Set("type", "stock")
	params.Set("resolution", resolution)
	params.Set("from", strconv.FormatInt(from.Unix(), 10))
	params.Set("to", strconv.FormatInt(to.Unix(), 10))

	root, err := c.fetchJSON(ctx, "/stock/v2/stock/bars-long-term", params)
	if err != nil {
		return nil, fmt.Errorf("price series: %w", err)
	}

	series, err := parseBars(root)
	if err != nil {
		return nil, fmt.Errorf("price series %s: %w", symbol, err)
	}

	c.logger.WithFields(map[string]interface{}{
		"symbol": symbol,
		"bars":   len(series),
	}).Debug("Fetched price series")

	return series, nil
}

// parseBars converts the provider bar rows into candles. Rows with an
// unparseable date are skipped; zero-price rows (suspended sessions)
// are dropped.
func parseBars(root gjson.Result) (contracts.PriceSeries, error) {
	rows := root.Get("data")
	if !rows.IsArray() {
		return nil, fmt.Errorf("missing data array")
	}

	series := make(contracts.PriceSeries, 0, len(rows.Array()))
	for _, row := range rows.Array() {
		date, ok := parseTradingDate(row)
		if !ok {
			continue
		}

		candle := contracts.Candle{
			Date:   date,
			Open:   row.Get("open").Float(),
			High:   row.Get("high").Float(),
			Low:    row.Get("low").Float(),
			Close:  row.Get("close").Float(),
			Volume: row.Get("volume").Int(),
		}
		if candle.Close <= 0 {
			continue
		}

		series = append(series, candle)
	}

	// The endpoint usually returns ascending bars already, but the
	// indicator engine depends on the ordering, so enforce it.
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series, nil
}

// parseTradingDate handles both tradingDate string and epoch ms forms.
func parseTradingDate(row gjson.Result) (time.Time, bool) {
	if v := row.Get("tradingDate"); v.Exists() {
		if v.Type == gjson.String {
			for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.000Z", "2006-01-02"} {
				if t, err := time.Parse(layout, v.String()); err == nil {
					return t, true
				}
			}
			return time.Time{}, false
		}
		return time.UnixMilli(v.Int()).UTC(), true
	}

	if v := row.Get("time"); v.Exists() {
		return time.Unix(v.Int(), 0).UTC(), true
	}

	return time.Time{}, false
}

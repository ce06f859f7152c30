package tcbs

import (
	"context"
	"fmt"
	"net/url"

	"github.com/quangtran88/vnscreener/internal/contracts"
)

// ListUniverse fetches the list of HOSE/HNX listed symbols with their
// sector labels. When the listing endpoint fails or returns nothing,
// the built-in fallback table is returned so a screening run can still
// proceed offline.
func (c *Client) ListUniverse(ctx context.Context) ([]contracts.Symbol, error) {
	params := url.Values{}
	params.Set("exchange", "HOSE,HNX")

	root, err := c.fetchJSON(ctx, "/stock/v1/listing", params)
	if err != nil {
		c.logger.WithError(err).Warn("Listing fetch failed, using fallback universe")
		return FallbackUniverse(), nil
	}

	rows := root.Get("data")
	if !rows.IsArray() || len(rows.Array()) == 0 {
		c.logger.Warn("Listing response empty, using fallback universe")
		return FallbackUniverse(), nil
	}

	symbols := make([]contracts.Symbol, 0, len(rows.Array()))
	for _, row := range rows.Array() {
		code := row.Get("ticker").String()
		if code == "" {
			continue
		}

		symbols = append(symbols, contracts.Symbol{
			Code:     code,
			Name:     row.Get("companyName").String(),
			Sector:   row.Get("industryName").String(),
			Exchange: row.Get("exchange").String(),
		})
	}

	if len(symbols) == 0 {
		return nil, fmt.Errorf("listing response contained no usable symbols")
	}

	c.logger.WithField("count", len(symbols)).Debug("Fetched listing")
	return symbols, nil
}

package tcbs

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/quangtran88/vnscreener/pkg/httputil"
	"github.com/quangtran88/vnscreener/pkg/logger"
)

// Client handles communication with the TCBS public data API.
// All calls to the provider go through this client; it normalizes the
// provider's loosely-shaped payloads into the canonical contract
// types and nothing else in the system touches raw provider fields.
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// NewClient creates a new TCBS client.
func NewClient(httpClient *httputil.Client, baseURL string, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log.WithField("module", "tcbs"),
		baseURL:    baseURL,
	}
}

// fetchJSON fetches a path from the provider and parses the body.
// An unparseable body is an error; callers decide how to degrade.
func (c *Client) fetchJSON(ctx context.Context, path string, params url.Values) (gjson.Result, error) {
	fullURL := fmt.Sprintf("%s%s", c.baseURL, path)
	if len(params) > 0 {
		fullURL = fmt.Sprintf("%s?%s", fullURL, params.Encode())
	}

	body, err := c.httpClient.GetBody(ctx, fullURL)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("fetch %s: %w", path, err)
	}

	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("fetch %s: invalid JSON body", path)
	}

	return gjson.ParseBytes(body), nil
}

// numField returns the first present numeric field among the given
// names. Provider payloads are inconsistent about field naming across
// periods and endpoint versions, so the normalization lives here.
func numField(row gjson.Result, names ...string) (float64, bool) {
	for _, name := range names {
		if v := row.Get(name); v.Exists() && v.Type != gjson.Null {
			return v.Float(), true
		}
	}
	return 0, false
}

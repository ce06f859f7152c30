package api

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/quangtran88/vnscreener/internal/contracts"
	"github.com/quangtran88/vnscreener/pkg/logger"
)

// QuoteSource is the slice of the fetch gateway the quote hub consumes.
type QuoteSource interface {
	FetchPriceSeries(ctx context.Context, symbol string, from, to time.Time) contracts.PriceSeries
}

// subscribeMessage is the only inbound message the hub understands.
type subscribeMessage struct {
	Action  string   `json:"action"`
	Tickers []string `json:"tickers"`
}

// Quote is one outbound price update.
type Quote struct {
	Ticker    string  `json:"ticker"`
	Price     float64 `json:"price"`
	Change    float64 `json:"change"`
	ChangePct float64 `json:"change_pct"`
	Volume    int64   `json:"volume"`
	Date      string  `json:"date"`
}

type quoteFrame struct {
	Type   string  `json:"type"`
	Quotes []Quote `json:"quotes"`
}

// client is one connected websocket with its subscription set.
type client struct {
	conn    *websocket.Conn
	tickers map[string]bool

	mu sync.Mutex
}

func (c *client) write(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// QuoteHub pushes latest daily quotes to subscribed websocket clients.
// Clients send {"action":"subscribe","tickers":["VCB","FPT"]} and
// receive quote frames on every push cycle.
type QuoteHub struct {
	source   QuoteSource
	logger   *logger.Logger
	interval time.Duration
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]bool
}

// NewQuoteHub creates a quote hub pushing on the given interval.
func NewQuoteHub(source QuoteSource, interval time.Duration, log *logger.Logger) *QuoteHub {
	if interval <= 0 {
		interval = 15 * time.Second
	}

	return &QuoteHub{
		source:   source,
		logger:   log.WithField("module", "quotehub"),
		interval: interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]bool),
	}
}

// Serve upgrades the request to a websocket and handles its
// subscription messages until the peer disconnects.
func (h *QuoteHub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	c := &client{
		conn:    conn,
		tickers: make(map[string]bool),
	}

	h.mu.Lock()
	h.clients[c] = true
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.WithField("clients", count).Info("WebSocket client connected")

	defer func() {
		h.mu.Lock()
		delete(h.clients, c)
		h.mu.Unlock()
		conn.Close()
		h.logger.Info("WebSocket client disconnected")
	}()

	for {
		var msg subscribeMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		h.handleMessage(c, msg)
	}
}

func (h *QuoteHub) handleMessage(c *client, msg subscribeMessage) {
	switch msg.Action {
	case "subscribe":
		c.mu.Lock()
		for _, t := range msg.Tickers {
			t = strings.ToUpper(strings.TrimSpace(t))
			if t != "" {
				c.tickers[t] = true
			}
		}
		c.mu.Unlock()
	case "unsubscribe":
		c.mu.Lock()
		for _, t := range msg.Tickers {
			delete(c.tickers, strings.ToUpper(strings.TrimSpace(t)))
		}
		c.mu.Unlock()
	default:
		h.logger.WithField("action", msg.Action).Debug("Ignoring unknown WebSocket action")
	}
}

// Run drives the push loop until ctx is cancelled. Intended to run in
// its own goroutine next to the HTTP server.
func (h *QuoteHub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.push(ctx)
		}
	}
}

// push fetches one quote per distinct subscribed ticker and fans the
// frame out to the clients that asked for it.
func (h *QuoteHub) push(ctx context.Context) {
	wanted := h.subscribedTickers()
	if len(wanted) == 0 {
		return
	}

	quotes := make(map[string]Quote, len(wanted))
	for _, t := range wanted {
		if q, ok := h.latestQuote(ctx, t); ok {
			quotes[t] = q
		}
	}
	if len(quotes) == 0 {
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		frame := quoteFrame{Type: "quotes"}

		c.mu.Lock()
		for t := range c.tickers {
			if q, ok := quotes[t]; ok {
				frame.Quotes = append(frame.Quotes, q)
			}
		}
		c.mu.Unlock()

		if len(frame.Quotes) == 0 {
			continue
		}
		if err := c.write(frame); err != nil {
			h.logger.WithError(err).Debug("WebSocket write failed")
		}
	}
}

func (h *QuoteHub) subscribedTickers() []string {
	seen := make(map[string]bool)

	h.mu.RLock()
	for c := range h.clients {
		c.mu.Lock()
		for t := range c.tickers {
			seen[t] = true
		}
		c.mu.Unlock()
	}
	h.mu.RUnlock()

	tickers := make([]string, 0, len(seen))
	for t := range seen {
		tickers = append(tickers, t)
	}
	return tickers
}

// latestQuote derives a quote from the last two daily bars.
func (h *QuoteHub) latestQuote(ctx context.Context, ticker string) (Quote, bool) {
	to := time.Now()
	from := to.AddDate(0, 0, -10)

	series := h.source.FetchPriceSeries(ctx, ticker, from, to)
	if len(series) == 0 {
		return Quote{}, false
	}

	last := series[len(series)-1]
	q := Quote{
		Ticker: ticker,
		Price:  last.Close,
		Volume: last.Volume,
		Date:   last.Date.Format("2006-01-02"),
	}

	if len(series) >= 2 {
		prev := series[len(series)-2].Close
		if prev > 0 {
			q.Change = last.Close - prev
			q.ChangePct = (last.Close - prev) / prev * 100
		}
	}

	return q, true
}

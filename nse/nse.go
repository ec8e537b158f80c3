// Package nse fetches end-of-day OHLCV data from the National Stock
// Exchange's historical equity API.
//
// The API sits behind the exchange's website and refuses bare requests: a
// session cookie from the homepage and browser-looking headers are required.
// Responses are cached on disk for the day, and calls are paced so a full
// universe fetch stays polite.
package nse

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"paperfolio"
)

const (
	baseURL    = "https://www.nseindia.com"
	historyURL = baseURL + "/api/historical/cm/equity"

	// apiDateFormat is the DD-MM-YYYY the history endpoint expects.
	apiDateFormat = "02-01-2006"

	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// Client is an NSE history client implementing paperfolio.Quoter.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	warmup  sync.Once
	warmErr error
}

// New returns a client with a daily disk cache and a 2-requests-per-second
// ceiling, matching the pacing the exchange tolerates.
func New() *Client {
	client := paperfolio.NewCachingClient()
	jar, _ := cookiejar.New(nil)
	client.Jar = jar
	client.Timeout = 30 * time.Second
	return &Client{
		http:    client,
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
}

// EndOfDay fetches the OHLCV row for one symbol on one day. Symbols are plain
// NSE codes ("RELIANCE"); a trailing ".NS" suffix is tolerated and stripped.
func (c *Client) EndOfDay(ctx context.Context, symbol string, day paperfolio.Date) (paperfolio.Quote, error) {
	symbol = strings.TrimSuffix(strings.ToUpper(symbol), ".NS")

	if err := c.ensureSession(ctx); err != nil {
		return paperfolio.Quote{}, err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return paperfolio.Quote{}, err
	}

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("series", `["EQ"]`)
	q.Set("from", day.Format(apiDateFormat))
	q.Set("to", day.Format(apiDateFormat))
	addr := historyURL + "?" + q.Encode()

	// One bhavcopy row per trading day.
	var content struct {
		Data []struct {
			Symbol string           `json:"CH_SYMBOL"`
			Open   paperfolio.Money `json:"CH_OPENING_PRICE"`
			High   paperfolio.Money `json:"CH_TRADE_HIGH_PRICE"`
			Low    paperfolio.Money `json:"CH_TRADE_LOW_PRICE"`
			Close  paperfolio.Money `json:"CH_CLOSING_PRICE"`
			Volume int64            `json:"CH_TOT_TRADED_QTY"`
		} `json:"data"`
	}
	if err := paperfolio.JSONGet(c.http, addr, &content,
		"User-Agent", userAgent,
		"Accept", "application/json",
		"Referer", baseURL+"/report-detail/eq_security",
	); err != nil {
		return paperfolio.Quote{}, fmt.Errorf("nse history for %s: %w", symbol, err)
	}

	if len(content.Data) == 0 {
		return paperfolio.Quote{}, paperfolio.ErrNoQuote
	}
	row := content.Data[0]
	return paperfolio.Quote{
		Symbol: symbol,
		Date:   day,
		Open:   row.Open,
		High:   row.High,
		Low:    row.Low,
		Close:  row.Close,
		Volume: row.Volume,
	}, nil
}

// ensureSession hits the homepage once to collect the session cookies the
// history endpoint insists on.
func (c *Client) ensureSession(ctx context.Context) error {
	c.warmup.Do(func() {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
		if err != nil {
			c.warmErr = err
			return
		}
		req.Header.Set("User-Agent", userAgent)
		resp, err := c.http.Do(req)
		if err != nil {
			c.warmErr = fmt.Errorf("nse session warmup: %w", err)
			return
		}
		resp.Body.Close()
	})
	return c.warmErr
}

// Package yahoo fetches end-of-day OHLCV data from the Yahoo Finance chart
// API. It is the fallback vendor when the exchange API misbehaves: no API key,
// no session dance, just the ".NS" suffix on the symbol.
package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"net/http"

	"golang.org/x/time/rate"

	"paperfolio"
)

const (
	chartURL = "https://query1.finance.yahoo.com/v8/finance/chart/"

	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// Client is a Yahoo chart client implementing paperfolio.Quoter.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
}

// New returns a client with a daily disk cache and a 5-requests-per-second
// ceiling. Yahoo tolerates much more than the exchange does.
func New() *Client {
	client := paperfolio.NewCachingClient()
	client.Timeout = 30 * time.Second
	return &Client{
		http:    client,
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
	}
}

// chartResponse mirrors the slice the v8 chart endpoint returns for a
// one-day, one-symbol query.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []float64 `json:"open"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
					Close  []float64 `json:"close"`
					Volume []int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// EndOfDay fetches the OHLCV row for one symbol on one day. Plain NSE codes
// get the ".NS" suffix appended for Yahoo.
func (c *Client) EndOfDay(ctx context.Context, symbol string, day paperfolio.Date) (paperfolio.Quote, error) {
	symbol = strings.ToUpper(symbol)
	ticker := symbol
	if !strings.Contains(ticker, ".") {
		ticker += ".NS"
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return paperfolio.Quote{}, err
	}

	// Midnight-to-midnight in exchange time brackets exactly one candle.
	ist := time.FixedZone("IST", 5*3600+1800)
	start := time.Date(day.Year(), time.Month(day.Month()), day.Day(), 0, 0, 0, 0, ist)
	end := start.Add(24 * time.Hour)

	q := url.Values{}
	q.Set("period1", strconv.FormatInt(start.Unix(), 10))
	q.Set("period2", strconv.FormatInt(end.Unix(), 10))
	q.Set("interval", "1d")
	addr := chartURL + url.PathEscape(ticker) + "?" + q.Encode()

	var content chartResponse
	if err := paperfolio.JSONGet(c.http, addr, &content, "User-Agent", userAgent); err != nil {
		return paperfolio.Quote{}, fmt.Errorf("yahoo chart for %s: %w", ticker, err)
	}
	if content.Chart.Error != nil {
		return paperfolio.Quote{}, fmt.Errorf("yahoo chart for %s: %s (%s)", ticker, content.Chart.Error.Description, content.Chart.Error.Code)
	}
	if len(content.Chart.Result) == 0 {
		return paperfolio.Quote{}, paperfolio.ErrNoQuote
	}
	result := content.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return paperfolio.Quote{}, paperfolio.ErrNoQuote
	}
	candle := result.Indicators.Quote[0]
	if len(candle.Close) == 0 {
		return paperfolio.Quote{}, paperfolio.ErrNoQuote
	}

	return paperfolio.Quote{
		Symbol: symbol,
		Date:   day,
		Open:   paperfolio.M(candle.Open[0]).Round2(),
		High:   paperfolio.M(candle.High[0]).Round2(),
		Low:    paperfolio.M(candle.Low[0]).Round2(),
		Close:  paperfolio.M(candle.Close[0]).Round2(),
		Volume: candle.Volume[0],
	}, nil
}

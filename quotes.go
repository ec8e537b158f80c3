package paperfolio

import (
	"context"
	"errors"
	"log"
	"sync"
)

// ErrNoQuote is returned by a Quoter when the vendor has no data for the
// symbol on that day (holiday, suspension, fresh listing).
var ErrNoQuote = errors.New("no quote for that day")

// Quoter is the abstract price capability: one end-of-day quote per call.
// Vendors (nse, yahoo) implement it; everything above composes against it.
type Quoter interface {
	EndOfDay(ctx context.Context, symbol string, day Date) (Quote, error)
}

// FetchQuotes fetches a day's quotes for the symbols of one category. Fetches
// fan out over at most workers goroutines as a pure speed-up: results are
// collected by input position, so the returned slice follows the symbol order
// regardless of completion order and the written day file is reproducible.
// Symbols without data or with a failing vendor call are logged and skipped,
// never aborting the batch.
func FetchQuotes(ctx context.Context, q Quoter, category string, symbols []string, day Date, workers int) []Quote {
	if workers < 1 {
		workers = 1
	}

	type result struct {
		quote Quote
		err   error
	}
	results := make([]result, len(symbols))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i, symbol := range symbols {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			quote, err := q.EndOfDay(ctx, symbol, day)
			results[i] = result{quote: quote, err: err}
		}(i, symbol)
	}
	wg.Wait()

	quotes := make([]Quote, 0, len(symbols))
	for i, r := range results {
		if r.err != nil {
			if errors.Is(r.err, ErrNoQuote) {
				log.Printf("no data for %s on %s", symbols[i], day)
			} else {
				log.Printf("fetch failed for %s: %v", symbols[i], r.err)
			}
			continue
		}
		r.quote.Category = category
		quotes = append(quotes, r.quote)
	}
	return quotes
}

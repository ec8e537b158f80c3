package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"paperfolio"
	"paperfolio/nse"
)

type fetchCmd struct {
	date string
}

func (*fetchCmd) Name() string { return "fetch" }
func (*fetchCmd) Synopsis() string {
	return "fetch end-of-day OHLCV data for the tracked universe into the day's stock file"
}
func (*fetchCmd) Usage() string {
	return `pfa fetch [-d <date>]

  Fetches end-of-day data for every tracked mid-cap and small-cap name,
  keeps the most traded ones per category, and writes the day's stock
  file. Names without data that day are skipped. Safe to re-run: the
  file is rewritten whole.

Usage Examples:
# Fetch today's data.
$ pfa fetch

# Backfill a specific day.
$ pfa fetch -d 2026-08-28

`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Trading date (YYYY-MM-DD). Defaults to today.")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitUsageError
	}
	if !day.IsWeekday() {
		fmt.Printf("Warning: %s is a weekend, expect an empty file.\n", day)
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	quoter, err := cfg.Quoter()
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}

	var quotes []paperfolio.Quote
	for _, category := range nse.Categories() {
		symbols := nse.Universe()[category]
		fmt.Printf("Fetching %s (%d symbols)...\n", category, len(symbols))
		got := paperfolio.FetchQuotes(ctx, quoter, category, symbols, day, cfg.Workers)
		fmt.Printf("Fetched %d quotes for %s\n", len(got), category)
		quotes = append(quotes, got...)
	}
	quotes = paperfolio.TopByVolume(quotes, cfg.Top)

	store := cfg.Store()
	if err := store.SaveStocks(day, quotes); err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	if len(quotes) == 0 {
		fmt.Printf("No data for %s (non-trading day?). Created empty %s.\n", day, store.StockPath(day))
	} else {
		fmt.Printf("Saved %d rows to %s\n", len(quotes), store.StockPath(day))
	}
	return subcommands.ExitSuccess
}

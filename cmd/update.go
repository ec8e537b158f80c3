package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"paperfolio"
)

type updateCmd struct {
	date string
	src  string
}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "mark the portfolio to market with the day's closing prices"
}
func (*updateCmd) Usage() string {
	return `pfa update [-d <date>] [-src <date>]

  Loads the portfolio snapshot, refreshes every holding's current price,
  value and change from the day's stock file, and writes the day's
  snapshot. Holdings without a close that day keep their prior marks and
  are listed. Re-running is harmless.

Usage Examples:
# Mark today's snapshot with today's closes.
$ pfa update

# Roll yesterday's snapshot forward to today.
$ pfa update -d 2026-08-28 -src 2026-08-27

`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Trading date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.src, "src", "", "Date of the snapshot to start from. Defaults to the trading date.")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitUsageError
	}
	src := day
	if c.src != "" {
		if src, err = paperfolio.ParseDate(c.src); err != nil {
			fmt.Println(err)
			return subcommands.ExitUsageError
		}
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	store := cfg.Store()

	book, err := store.LoadBook(src)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	quotes, err := store.LoadStocks(day)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}

	book, stale := paperfolio.MarkToMarket(book, paperfolio.StockCloses(quotes), day)
	for _, s := range stale {
		fmt.Println(s)
	}

	if err := store.SaveBook(day, book); err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated portfolio saved to %s\n", store.PortfolioPath(day))
	return subcommands.ExitSuccess
}

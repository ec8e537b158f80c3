package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"paperfolio"
)

type rebuildCmd struct {
	date string
	kind string
}

func (*rebuildCmd) Name() string { return "rebuild" }
func (*rebuildCmd) Synopsis() string {
	return "rebuild the portfolio from scratch out of a decision's plan"
}
func (*rebuildCmd) Usage() string {
	return `pfa rebuild [-d <date>] [-k <kind>]

  Starts from an empty book with the decision's planned cash, replays
  its trades, then marks the result to the day's closes. Prior holdings
  are discarded entirely. Meant for the weekend "close out, start over"
  decisions.

Usage Examples:
# Rebuild from the weekend training decision.
$ pfa rebuild -k t -d 2026-08-30

`
}

func (c *rebuildCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Trading date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.kind, "k", "t", "Decision kind: f (first timer), d (daily) or t (training).")
}

func (c *rebuildCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitUsageError
	}
	kind, err := paperfolio.ParseKind(c.kind)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	store := cfg.Store()

	d, err := store.LoadDecision(kind, day)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}

	// Closes may be missing on a non-trading day; rebuild still works, the
	// new positions just keep their trade prices as current.
	closes := paperfolio.Closes{}
	if quotes, err := store.LoadStocks(day); err == nil {
		closes = paperfolio.StockCloses(quotes)
	} else {
		fmt.Println(err)
	}

	book, err := paperfolio.Rebuild(d, closes, day)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}

	if err := store.SaveBook(day, book); err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Rebuilt portfolio (%d rows) saved to %s\n", book.Len(), store.PortfolioPath(day))
	return subcommands.ExitSuccess
}

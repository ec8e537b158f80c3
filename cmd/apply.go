package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"paperfolio"
)

type applyCmd struct {
	date string
	src  string
	kind string
}

func (*applyCmd) Name() string { return "apply" }
func (*applyCmd) Synopsis() string {
	return "apply the day's archived trade decisions to the portfolio"
}
func (*applyCmd) Usage() string {
	return `pfa apply [-d <date>] [-src <date>] [-k <kind>]

  Loads the archived reply for the date, decodes its trades and replays
  them, in order, into the portfolio snapshot. Buys recompute the
  weighted cost basis and debit cash; sells credit cash; removes drop
  the position. The snapshot ends with a fresh Cash row.

Usage Examples:
# Apply today's daily decision to today's snapshot.
$ pfa apply

# Apply a first-timer decision onto yesterday's snapshot.
$ pfa apply -k f -src 2026-08-27

`
}

func (c *applyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Trading date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.src, "src", "", "Date of the snapshot to start from. Defaults to the trading date.")
	f.StringVar(&c.kind, "k", "d", "Decision kind: f (first timer), d (daily) or t (training).")
}

func (c *applyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if len(d.Trades) == 0 {
		fmt.Println("Decision carries no trades, nothing to apply.")
		return subcommands.ExitSuccess
	}

	book, err := store.LoadBook(src)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	cash := book.TakeCash()

	book, cash, err = paperfolio.ApplyTrades(book, cash, d.Trades)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}

	if err := book.Validate(); err != nil {
		fmt.Println("Warning:", err)
	}
	if err := store.SaveBook(day, book); err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Applied %d trades, remaining cash %s. Snapshot saved to %s\n",
		len(d.Trades), cash.Display(), store.PortfolioPath(day))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"paperfolio"
)

type showCmd struct {
	date   string
	stocks bool
	plain  bool
}

func (*showCmd) Name() string { return "show" }
func (*showCmd) Synopsis() string {
	return "display a day's portfolio snapshot or stock file"
}
func (*showCmd) Usage() string {
	return `pfa show [-d <date>] [-stocks] [-plain]

  Renders the day's portfolio snapshot as a styled report. With -stocks
  the day's OHLCV file is shown instead. -plain prints the exact text
  block the prompts receive.

Usage Examples:
# Show today's portfolio.
$ pfa show

# Show a past day's stock data.
$ pfa show -stocks -d 2026-08-28

`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Trading date (YYYY-MM-DD). Defaults to today.")
	f.BoolVar(&c.stocks, "stocks", false, "Show the day's stock data instead of the portfolio.")
	f.BoolVar(&c.plain, "plain", false, "Print the plain prompt block instead of the styled report.")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.date)
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

	if c.stocks {
		quotes, err := store.LoadStocks(day)
		if err != nil {
			fmt.Println(err)
			return subcommands.ExitFailure
		}
		if c.plain {
			fmt.Print(paperfolio.StocksText(quotes, day))
		} else {
			printMarkdown(paperfolio.StocksMarkdown(quotes, day))
		}
		return subcommands.ExitSuccess
	}

	book, err := store.LoadBook(day)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	if c.plain {
		fmt.Print(paperfolio.BookText(book))
	} else {
		printMarkdown(paperfolio.BookMarkdown(book, day))
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"paperfolio"
	"paperfolio/agent"
)

type adviseCmd struct {
	date   string
	kind   string
	dryRun bool
}

func (*adviseCmd) Name() string { return "advise" }
func (*adviseCmd) Synopsis() string {
	return "send an advisory prompt to the model and archive its reply"
}
func (*adviseCmd) Usage() string {
	return `pfa advise [-d <date>] [-k <kind>] [-n]

  Builds the prompt of the given kind from the day's files and prior
  archived replies, sends it to the model and archives the reply for
  apply/rebuild/weekly to consume. The API key is read from API_KEY in
  the environment or .env.

  Kinds: f seeds a brand-new portfolio, d is the daily review, t is the
  weekend training deep-dive.

Usage Examples:
# Today's daily review.
$ pfa advise

# Inspect the weekend prompt without sending it.
$ pfa advise -k t -n

`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Trading date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.kind, "k", "d", "Prompt kind: f (first timer), d (daily) or t (training).")
	f.BoolVar(&c.dryRun, "n", false, "Print the prompt instead of sending it.")
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if !day.IsWeekday() && kind != paperfolio.KindTraining {
		fmt.Printf("Warning: %s is a weekend. Consider using the last trading day.\n", day)
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	advisor := agent.New(cfg.Store(), cfg.PromptDir, cfg.Model)

	if c.dryRun {
		prompt, err := advisor.BuildPrompt(kind, day)
		if err != nil {
			fmt.Println(err)
			return subcommands.ExitFailure
		}
		fmt.Println(prompt)
		return subcommands.ExitSuccess
	}

	if err := advisor.Start(ctx, os.Getenv("API_KEY")); err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}
	path, content, err := advisor.Advise(ctx, kind, day)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}

	printMarkdown(content)
	fmt.Printf("Response saved to: %s\n", path)
	return subcommands.ExitSuccess
}

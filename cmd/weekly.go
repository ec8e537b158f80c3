package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"paperfolio"
)

type weeklyCmd struct {
	date string
	out  string
}

func (*weeklyCmd) Name() string { return "weekly" }
func (*weeklyCmd) Synopsis() string {
	return "compose the Monday-to-Friday digest from the week's archived replies"
}
func (*weeklyCmd) Usage() string {
	return `pfa weekly [-d <friday>] [-o <file>]

  Walks the week ending on the given Friday and prints each day's
  summary and signals from the archived daily replies. Days without a
  reply render as "No data". The digest feeds the weekend training
  prompt.

Usage Examples:
# Digest for the week ending today (must be a Friday).
$ pfa weekly

# Save a past week's digest.
$ pfa weekly -d 2026-08-21 -o digest.txt

`
}

func (c *weeklyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "The week's Friday (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.out, "o", "", "Write the digest to a file instead of stdout.")
}

func (c *weeklyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	friday, err := parseDay(c.date)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitUsageError
	}
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitFailure
	}

	digest, err := paperfolio.WeeklyText(cfg.Store(), friday)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitUsageError
	}

	if c.out != "" {
		if err := os.WriteFile(c.out, []byte(digest), 0644); err != nil {
			fmt.Println(err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Digest saved to %s\n", c.out)
		return subcommands.ExitSuccess
	}
	fmt.Print(digest)
	return subcommands.ExitSuccess
}

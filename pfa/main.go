package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"paperfolio/cmd"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests and returns immediately
// otherwise. Install with: COMP_INSTALL=1 pfa
func completion() {
	dated := map[string]complete.Predictor{"d": predict.Something}
	decided := map[string]complete.Predictor{
		"d": predict.Something,
		"k": predict.Set{"f", "d", "t"},
	}
	pfa := &complete.Command{
		Sub: map[string]*complete.Command{
			"fetch":   {Flags: dated},
			"update":  {Flags: map[string]complete.Predictor{"d": predict.Something, "src": predict.Something}},
			"apply":   {Flags: decided},
			"rebuild": {Flags: decided},
			"show":    {Flags: dated},
			"advise":  {Flags: decided},
			"weekly":  {Flags: map[string]complete.Predictor{"d": predict.Something, "o": predict.Files("*")}},
		},
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.toml"),
			"root":   predict.Dirs("*"),
		},
	}
	pfa.Complete("pfa")
}

package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/coinclarity/cryptotax/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs before flag parsing and exits on its own when
	// invoked by the shell.
	completion().Complete("cryptotax")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	reportFlags := map[string]complete.Predictor{
		"year":    predict.Something,
		"method":  predict.Set{"fifo", "lifo", "hifo"},
		"state":   predict.Something,
		"bracket": predict.Something,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
		},
		Sub: map[string]*complete.Command{
			"report": {Flags: reportFlags},
			"export": {Flags: map[string]complete.Predictor{
				"year":    predict.Something,
				"method":  predict.Set{"fifo", "lifo", "hifo"},
				"state":   predict.Something,
				"bracket": predict.Something,
				"format":  predict.Set{"8949", "transactions", "income", "summary"},
				"o":       predict.Files("*.csv"),
			}},
			"txf": {Flags: map[string]complete.Predictor{
				"year":   predict.Something,
				"method": predict.Set{"fifo", "lifo", "hifo"},
				"o":      predict.Files("*.txf"),
			}},
			"log":    {Flags: map[string]complete.Predictor{"year": predict.Something}},
			"fmt":    {},
			"fetch":  {},
			"topic":  {Args: predict.Set{"readme", "methods", "washsale", "brackets", "exports", "*"}},
			"assist": {Flags: reportFlags},
		},
	}
}

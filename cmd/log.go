package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/coinclarity/cryptotax/renderer"
	"github.com/google/subcommands"
)

// logCmd holds the flags for the 'log' subcommand.
type logCmd struct {
	year   int
	income bool
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list the ledger transactions" }
func (*logCmd) Usage() string {
	return `cryptotax log [-income [-year <year>]]

  Prints the ledger transactions in chronological order. With -income,
  prints only the year's income transactions with their USD values.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", time.Now().Year()-1, "Year for the -income listing")
	f.BoolVar(&c.income, "income", false, "Only list the income transactions")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.income {
		printMarkdown(renderer.IncomeMarkdown(ledger, c.year))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.TransactionsMarkdown(ledger))
	return subcommands.ExitSuccess
}

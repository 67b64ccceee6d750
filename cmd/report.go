package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/coinclarity/cryptotax"
	"github.com/coinclarity/cryptotax/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	year    int
	method  string
	state   string
	bracket float64
	events  bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "capital gains and income tax report for one year" }
func (*reportCmd) Usage() string {
	return `cryptotax report [-year <year>] [-method <method>] [-state <code>] [-bracket <pct>] [-events]

  Generates the tax report for one year: short/long-term gains, ordinary
  income, and estimated federal and state liabilities.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", time.Now().Year()-1, "Tax year to report on")
	f.StringVar(&c.method, "method", "fifo", "Cost basis method (fifo, lifo, hifo)")
	f.StringVar(&c.state, "state", "", "2-letter state code for the state tax estimate")
	f.Float64Var(&c.bracket, "bracket", 22, "Marginal federal bracket for ordinary income, in percent")
	f.BoolVar(&c.events, "events", false, "Also list the taxable events")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	method, err := cryptotax.ParseCostBasisMethod(c.method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cost basis method: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := cryptotax.GenerateReport(ledger, c.year, method, c.state, cryptotax.Percent(c.bracket))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.SummaryMarkdown(report)
	if c.events {
		md += "\n" + renderer.EventsMarkdown(report)
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

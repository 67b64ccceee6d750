package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/coinclarity/cryptotax"
	"github.com/google/subcommands"
)

// txfCmd holds the flags for the 'txf' subcommand.
type txfCmd struct {
	year    int
	method  string
	output  string
	bracket float64
}

func (*txfCmd) Name() string     { return "txf" }
func (*txfCmd) Synopsis() string { return "export the taxable events in TXF interchange format" }
func (*txfCmd) Usage() string {
	return `cryptotax txf [-year <year>] [-method <method>] [-o <file>]

  Writes the year's taxable events in a TXF-style encoding for tax
  software imports, field-for-field equivalent to the 8949 CSV export.
`
}

func (c *txfCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", time.Now().Year()-1, "Tax year to export")
	f.StringVar(&c.method, "method", "fifo", "Cost basis method (fifo, lifo, hifo)")
	f.Float64Var(&c.bracket, "bracket", 22, "Marginal federal bracket for ordinary income, in percent")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *txfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report, err := cryptotax.GenerateReport(ledger, c.year, method, "", cryptotax.Percent(c.bracket))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
		return subcommands.ExitFailure
	}

	var out io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	if err := cryptotax.ExportTXF(out, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting TXF: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

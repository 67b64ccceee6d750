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

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	year    int
	method  string
	state   string
	bracket float64
	format  string
	output  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the report or the ledger as CSV" }
func (*exportCmd) Usage() string {
	return `cryptotax export -format <8949|transactions|income|summary> [-year <year>] [-o <file>]

  Writes one of the CSV export formats to stdout or to a file.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", time.Now().Year()-1, "Tax year to export")
	f.StringVar(&c.method, "method", "fifo", "Cost basis method (fifo, lifo, hifo)")
	f.StringVar(&c.state, "state", "", "2-letter state code for the state tax estimate")
	f.Float64Var(&c.bracket, "bracket", 22, "Marginal federal bracket for ordinary income, in percent")
	f.StringVar(&c.format, "format", "8949", "Export format: 8949, transactions, income or summary")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
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

	switch c.format {
	case "transactions":
		err = cryptotax.ExportTransactions(out, ledger)
	case "income":
		err = cryptotax.ExportIncome(out, ledger, c.year)
	case "8949", "summary":
		report, rerr := c.generate(ledger)
		if rerr != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", rerr)
			return subcommands.ExitFailure
		}
		if c.format == "8949" {
			err = cryptotax.ExportForm8949(out, report)
		} else {
			err = cryptotax.ExportSummary(out, report.Summary)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown export format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *exportCmd) generate(ledger *cryptotax.Ledger) (*cryptotax.TaxReport, error) {
	method, err := cryptotax.ParseCostBasisMethod(c.method)
	if err != nil {
		return nil, err
	}
	return cryptotax.GenerateReport(ledger, c.year, method, c.state, cryptotax.Percent(c.bracket))
}

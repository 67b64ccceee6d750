// Package cmd implements the CLI application to generate and export crypto
// tax reports.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/coinclarity/cryptotax"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")
	c.Register(&txfCmd{}, "reports")
	c.Register(&logCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")
	c.Register(&fetchCmd{}, "ledger")
	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var ledgerFile = flag.String("ledger-file", "ledger.jsonl", "Path to the ledger file containing transactions (JSONL format)")

// DecodeLedgerFile loads the app's default ledger file.
func DecodeLedgerFile() (*cryptotax.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return cryptotax.DecodeLedger(f)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails (e.g. not a tty).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/coinclarity/cryptotax"
	"github.com/google/subcommands"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	write bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch spot prices for transactions missing one" }
func (*fetchCmd) Usage() string {
	return `cryptotax fetch [-w]

  Looks up the current USD spot price for every transaction recorded
  with a zero price per unit, and prints (or writes back with -w) the
  filled-in ledger.

  Spot prices only approximate the historical fair market value; review
  the filled values before reporting.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.write, "w", false, "Write the result back to the ledger file instead of stdout")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	prices := make(map[string]cryptotax.Money)
	txs := ledger.Transactions()
	var filled int
	for i, t := range txs {
		if !t.PricePerUnit.IsZero() {
			continue
		}
		price, ok := prices[t.Asset]
		if !ok {
			price, err = cryptotax.SpotPriceUSD(t.Asset)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error fetching %s price: %v\n", t.Asset, err)
				return subcommands.ExitFailure
			}
			prices[t.Asset] = price
		}
		txs[i].PricePerUnit = price
		filled++
	}

	updated, err := cryptotax.NewLedger(txs...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rebuilding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.write {
		if err := cryptotax.EncodeLedger(os.Stdout, updated); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	file, err := os.Create(*ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer file.Close()
	if err := cryptotax.EncodeLedger(file, updated); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Filled %d prices in %q.\n", filled, *ledgerFile)
	return subcommands.ExitSuccess
}

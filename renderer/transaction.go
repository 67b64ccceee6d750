package renderer

import (
	"fmt"
	"strings"

	"github.com/coinclarity/cryptotax"
)

// TransactionsMarkdown renders the ledger's transaction history as a
// markdown table.
func TransactionsMarkdown(ledger *cryptotax.Ledger) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Transactions (%d)\n\n", ledger.Len())
	fmt.Fprintln(&b, "| Date | Asset | Kind | Amount | Price | Fee | Exchange |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|:---|")
	for tx := range ledger.All() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			tx.Timestamp.Format("2006-01-02"),
			tx.Asset,
			tx.Kind,
			tx.Amount,
			tx.PricePerUnit,
			tx.Fee,
			tx.Exchange,
		)
	}
	return b.String()
}

// IncomeMarkdown renders the year's ordinary income transactions.
func IncomeMarkdown(ledger *cryptotax.Ledger, year int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Ordinary Income %d\n\n", year)

	total := cryptotax.USD(0)
	rows := 0
	fmt.Fprintln(&b, "| Date | Asset | Kind | Amount | Value |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|")
	for _, tx := range ledger.InYear(year) {
		if !tx.Kind.IsIncome() {
			continue
		}
		value := tx.IncomeValue()
		total = total.Add(value)
		rows++
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			tx.Timestamp.Format("2006-01-02"), tx.Asset, tx.Kind, tx.Amount, value)
	}
	if rows == 0 {
		return fmt.Sprintf("# Ordinary Income %d\n\nNo income transactions this year.\n", year)
	}
	fmt.Fprintf(&b, "| **Total** | | | | **%s** |\n", total)
	return b.String()
}

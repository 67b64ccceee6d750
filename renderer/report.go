// Package renderer turns engine outputs into markdown reports.
package renderer

import (
	"fmt"
	"strings"

	"github.com/coinclarity/cryptotax"
)

// SummaryMarkdown renders the year summary to a markdown string.
func SummaryMarkdown(report *cryptotax.TaxReport) string {
	var b strings.Builder
	s := report.Summary

	fmt.Fprintf(&b, "# Tax Report %d\n\n", s.Year)
	fmt.Fprintf(&b, "Method: %s\n\n", s.Method)

	fmt.Fprint(&b, "## Capital Gains\n\n")
	fmt.Fprintln(&b, "| Term | Gains | Losses | Net |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	fmt.Fprintf(&b, "| Short-term | %s | %s | %s |\n",
		s.ShortTermGains.SignedString(), s.ShortTermLosses.SignedString(), s.NetShortTerm.SignedString())
	fmt.Fprintf(&b, "| Long-term | %s | %s | %s |\n",
		s.LongTermGains.SignedString(), s.LongTermLosses.SignedString(), s.NetLongTerm.SignedString())

	if !s.WashSalesDisallowed.IsZero() {
		fmt.Fprintf(&b, "\nWash sale losses disallowed: %s\n", s.WashSalesDisallowed)
	}

	if !s.TotalIncome.IsZero() {
		fmt.Fprint(&b, "\n## Ordinary Income\n\n")
		fmt.Fprintln(&b, "| Source | Value |")
		fmt.Fprintln(&b, "|:---|---:|")
		fmt.Fprintf(&b, "| Staking rewards | %s |\n", s.StakingIncome)
		if !s.OtherIncome.IsZero() {
			fmt.Fprintf(&b, "| Other | %s |\n", s.OtherIncome)
		}
		fmt.Fprintf(&b, "| **Total** | **%s** |\n", s.TotalIncome)
	}

	fmt.Fprint(&b, "\n## Estimated Tax\n\n")
	fmt.Fprintln(&b, "| | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Federal (capital gains) | %s |\n", s.EstimatedFederalTax)
	if s.State != "" && !s.StateUnsupported {
		fmt.Fprintf(&b, "| State (%s) | %s |\n", s.State, s.EstimatedStateTax)
	}
	fmt.Fprintf(&b, "| Ordinary income at %s | %s |\n", s.Bracket, s.EstimatedIncomeTax)
	fmt.Fprintf(&b, "| **Total** | **%s** |\n", s.EstimatedTotalTax)

	if s.StateUnsupported {
		fmt.Fprintf(&b, "\n> State %q is not in the rate table: the estimate above is federal-only.\n", s.State)
	}

	return b.String()
}

// EventsMarkdown renders the taxable events to a Form-8949 style markdown table.
func EventsMarkdown(report *cryptotax.TaxReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Taxable Events (%d)\n\n", len(report.TaxableEvents))
	if len(report.TaxableEvents) == 0 {
		fmt.Fprintln(&b, "No taxable events this year.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Description | Acquired | Disposed | Proceeds | Cost Basis | Gain/Loss | Term |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|:---|")
	for _, e := range report.TaxableEvents {
		term := "short"
		if e.HoldingPeriod == cryptotax.LongTerm {
			term = "long"
		}
		desc := fmt.Sprintf("%s %s", e.Amount, e.Asset)
		if !e.WashSaleDisallowed.IsZero() {
			desc += " (wash sale)"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			desc,
			e.AcquiredAt.Format("2006-01-02"),
			e.DisposedAt.Format("2006-01-02"),
			e.Proceeds,
			e.CostBasis,
			e.GainLoss.SignedString(),
			term,
		)
	}
	return b.String()
}

package cryptotax

import (
	"encoding/csv"
	"fmt"
	"io"
)

// this file contains the read-only export formats consumed by download
// collaborators. Every export takes the computed report (or the ledger) as
// input and never alters it.

const exportDateFormat = "2006-01-02"

// ExportForm8949 writes one CSV row per taxable event, in the column order
// of a Form-8949 style worksheet.
func ExportForm8949(w io.Writer, report *TaxReport) error {
	cw := csv.NewWriter(w)
	header := []string{"Description", "Date Acquired", "Date Disposed", "Proceeds", "Cost Basis", "Wash Sale Disallowed", "Gain/Loss", "Term"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range report.TaxableEvents {
		row := []string{
			fmt.Sprintf("%s %s", e.Amount, e.Asset),
			e.AcquiredAt.Format(exportDateFormat),
			e.DisposedAt.Format(exportDateFormat),
			e.Proceeds.Fixed(),
			e.CostBasis.Fixed(),
			e.WashSaleDisallowed.Fixed(),
			e.GainLoss.Fixed(),
			e.HoldingPeriod.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportTransactions writes the plain transaction history, one CSV row per
// source transaction.
func ExportTransactions(w io.Writer, ledger *Ledger) error {
	cw := csv.NewWriter(w)
	header := []string{"ID", "Timestamp", "Asset", "Kind", "Amount", "Price Per Unit", "Fee", "Exchange", "Notes"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for tx := range ledger.All() {
		row := []string{
			tx.ID,
			tx.Timestamp.Format(exportDateFormat),
			tx.Asset,
			string(tx.Kind),
			tx.Amount.String(),
			tx.PricePerUnit.Fixed(),
			tx.Fee.Fixed(),
			tx.Exchange,
			tx.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportIncome writes one CSV row per income-generating transaction of the
// given year, with its USD value at receipt.
func ExportIncome(w io.Writer, ledger *Ledger, year int) error {
	cw := csv.NewWriter(w)
	header := []string{"Date", "Asset", "Kind", "Amount", "Value USD"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, tx := range ledger.InYear(year) {
		if !tx.Kind.IsIncome() {
			continue
		}
		row := []string{
			tx.Timestamp.Format(exportDateFormat),
			tx.Asset,
			string(tx.Kind),
			tx.Amount.String(),
			tx.IncomeValue().Fixed(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportSummary writes the aggregate totals as key/value CSV rows.
func ExportSummary(w io.Writer, s TaxReportSummary) error {
	cw := csv.NewWriter(w)
	rows := [][]string{
		{"Tax Year", fmt.Sprintf("%d", s.Year)},
		{"Method", s.Method.String()},
		{"Short-Term Gains", s.ShortTermGains.Fixed()},
		{"Short-Term Losses", s.ShortTermLosses.Fixed()},
		{"Net Short-Term", s.NetShortTerm.Fixed()},
		{"Long-Term Gains", s.LongTermGains.Fixed()},
		{"Long-Term Losses", s.LongTermLosses.Fixed()},
		{"Net Long-Term", s.NetLongTerm.Fixed()},
		{"Wash Sales Disallowed", s.WashSalesDisallowed.Fixed()},
		{"Staking Income", s.StakingIncome.Fixed()},
		{"Other Income", s.OtherIncome.Fixed()},
		{"Total Income", s.TotalIncome.Fixed()},
		{"Estimated Federal Tax", s.EstimatedFederalTax.Fixed()},
		{"Estimated State Tax", s.EstimatedStateTax.Fixed()},
		{"Estimated Income Tax", s.EstimatedIncomeTax.Fixed()},
		{"Estimated Total Tax", s.EstimatedTotalTax.Fixed()},
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

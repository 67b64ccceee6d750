package cryptotax

import (
	"fmt"
	"io"
)

// ExportTXF writes the report in a TXF-style interchange encoding for tax
// software imports. The event records carry the same fields as the
// Form-8949 CSV export: description, acquired date, disposed date, cost
// basis and proceeds, under the short-term (N321) or long-term (N323)
// record code.
func ExportTXF(w io.Writer, report *TaxReport) error {
	if _, err := fmt.Fprintf(w, "V042\nAcryptotax\nD%s\n^\n", txfDate(report)); err != nil {
		return err
	}
	for _, e := range report.TaxableEvents {
		code := "N321"
		if e.HoldingPeriod == LongTerm {
			code = "N323"
		}
		_, err := fmt.Fprintf(w, "TD\n%s\nC1\nL1\nP%s %s\nD%s\nD%s\n$%s\n$%s\n^\n",
			code,
			e.Amount, e.Asset,
			e.AcquiredAt.Format("01/02/2006"),
			e.DisposedAt.Format("01/02/2006"),
			e.CostBasis.Fixed(),
			e.Proceeds.Fixed(),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// txfDate stamps the file with the end of the reported year, keeping the
// output a pure function of the report.
func txfDate(report *TaxReport) string {
	return fmt.Sprintf("12/31/%04d", report.Summary.Year)
}

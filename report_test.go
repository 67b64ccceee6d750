package cryptotax

import "testing"

func TestGenerateReport_SingleShortTermGain(t *testing.T) {
	ledger := mustLedger(t,
		tx("b1", "2023-01-01", "BTC", KindBuy, 1, 20000, 0),
		tx("s1", "2023-06-01", "BTC", KindSell, 1, 50000, 0),
	)
	report, err := GenerateReport(ledger, 2023, FIFO, "", 22)
	if err != nil {
		t.Fatalf("GenerateReport() failed: %v", err)
	}

	if len(report.TaxableEvents) != 1 {
		t.Fatalf("got %d events, want 1", len(report.TaxableEvents))
	}
	e := report.TaxableEvents[0]
	if e.HoldingPeriod != ShortTerm {
		t.Errorf("holding period = %s, want short_term", e.HoldingPeriod)
	}
	if !e.CostBasis.Equal(USD(20000)) {
		t.Errorf("cost basis = %s, want $20,000.00", e.CostBasis)
	}
	if !e.GainLoss.Equal(USD(30000)) {
		t.Errorf("gain = %s, want $30,000.00", e.GainLoss)
	}
	if !report.Summary.NetShortTerm.Equal(USD(30000)) {
		t.Errorf("net short-term = %s, want $30,000.00", report.Summary.NetShortTerm)
	}
}

// twoEthLots is the two-lot setup whose disposal outcome depends on the
// cost basis method: an old cheap lot and a newer expensive one.
func twoEthLots() []Transaction {
	return []Transaction{
		tx("e1", "2022-01-01", "ETH", KindBuy, 1, 1000, 0),
		tx("e2", "2022-06-01", "ETH", KindBuy, 1, 2000, 0),
		tx("s1", "2023-07-01", "ETH", KindSell, 1, 3000, 0),
	}
}

func TestGenerateReport_FIFOConsumesOldestLot(t *testing.T) {
	ledger := mustLedger(t, twoEthLots()...)
	report, err := GenerateReport(ledger, 2023, FIFO, "", 22)
	if err != nil {
		t.Fatalf("GenerateReport() failed: %v", err)
	}

	e := report.TaxableEvents[0]
	if e.ID != "s1:e1" {
		t.Errorf("event id = %q, want s1:e1", e.ID)
	}
	if !e.GainLoss.Equal(USD(2000)) {
		t.Errorf("gain = %s, want $2,000.00", e.GainLoss)
	}
	if e.HoldingPeriod != LongTerm {
		t.Errorf("holding period = %s, want long_term", e.HoldingPeriod)
	}
}

func TestGenerateReport_HIFOConsumesHighestBasisLot(t *testing.T) {
	ledger := mustLedger(t, twoEthLots()...)
	report, err := GenerateReport(ledger, 2023, HIFO, "", 22)
	if err != nil {
		t.Fatalf("GenerateReport() failed: %v", err)
	}

	e := report.TaxableEvents[0]
	if e.ID != "s1:e2" {
		t.Errorf("event id = %q, want s1:e2", e.ID)
	}
	if !e.GainLoss.Equal(USD(1000)) {
		t.Errorf("gain = %s, want $1,000.00", e.GainLoss)
	}
	// The holding period follows the consumed lot's acquisition date.
	if !e.AcquiredAt.Equal(day("2022-06-01")) {
		t.Errorf("acquired at = %s, want 2022-06-01", e.AcquiredAt)
	}
	if e.HoldingPeriod != LongTerm {
		t.Errorf("holding period = %s, want long_term", e.HoldingPeriod)
	}
}

func TestGenerateReport_MethodSensitivity(t *testing.T) {
	txs := []Transaction{
		tx("b1", "2023-01-01", "BTC", KindBuy, 1, 100, 0),
		tx("b2", "2023-02-01", "BTC", KindBuy, 1, 300, 0),
		tx("b3", "2023-03-01", "BTC", KindBuy, 1, 200, 0),
		tx("s1", "2023-06-01", "BTC", KindSell, 1, 400, 0),
	}
	ledger := mustLedger(t, txs...)

	net := make(map[CostBasisMethod]Money)
	for _, method := range []CostBasisMethod{FIFO, LIFO, HIFO} {
		report, err := GenerateReport(ledger, 2023, method, "", 22)
		if err != nil {
			t.Fatalf("GenerateReport(%s) failed: %v", method, err)
		}
		net[method] = report.Summary.NetShortTerm
	}

	// HIFO consumes the most expensive lot first, so it never reports a
	// larger gain than the other methods on the same ledger.
	if net[HIFO].GreaterThan(net[LIFO]) || net[HIFO].GreaterThan(net[FIFO]) {
		t.Errorf("HIFO gain %s exceeds LIFO %s or FIFO %s", net[HIFO], net[LIFO], net[FIFO])
	}
	if !net[FIFO].Equal(USD(300)) || !net[LIFO].Equal(USD(200)) || !net[HIFO].Equal(USD(100)) {
		t.Errorf("net gains = FIFO %s, LIFO %s, HIFO %s, want $300.00, $200.00, $100.00",
			net[FIFO], net[LIFO], net[HIFO])
	}
}

func TestGenerateReport_EmptyYearYieldsZeroSummary(t *testing.T) {
	ledger := mustLedger(t,
		tx("b1", "2022-01-01", "BTC", KindBuy, 1, 20000, 0),
		tx("s1", "2022-06-01", "BTC", KindSell, 1, 25000, 0),
	)
	report, err := GenerateReport(ledger, 2023, FIFO, "", 22)
	if err != nil {
		t.Fatalf("GenerateReport() failed: %v", err)
	}
	if len(report.TaxableEvents) != 0 {
		t.Errorf("got %d events, want 0", len(report.TaxableEvents))
	}
	s := report.Summary
	if s.Year != 2023 {
		t.Errorf("year = %d, want 2023", s.Year)
	}
	if !s.NetShortTerm.IsZero() || !s.NetLongTerm.IsZero() || !s.EstimatedTotalTax.IsZero() {
		t.Errorf("summary not zero: net ST %s, net LT %s, total tax %s",
			s.NetShortTerm, s.NetLongTerm, s.EstimatedTotalTax)
	}
}

func TestGenerateReport_UnsupportedStateFallsBackToFederal(t *testing.T) {
	ledger := mustLedger(t,
		tx("b1", "2023-01-01", "BTC", KindBuy, 1, 20000, 0),
		tx("s1", "2023-06-01", "BTC", KindSell, 1, 50000, 0),
	)
	report, err := GenerateReport(ledger, 2023, FIFO, "XX", 22)
	if err != nil {
		t.Fatalf("GenerateReport() failed: %v", err)
	}
	s := report.Summary
	if !s.StateUnsupported {
		t.Error("StateUnsupported = false, want true")
	}
	if !s.EstimatedStateTax.IsZero() {
		t.Errorf("state tax = %s, want $0.00", s.EstimatedStateTax)
	}
	if !s.EstimatedFederalTax.IsPositive() {
		t.Errorf("federal tax = %s, want positive", s.EstimatedFederalTax)
	}
}

func TestGenerateReport_TaxTotals(t *testing.T) {
	ledger := mustLedger(t,
		tx("b1", "2023-01-01", "BTC", KindBuy, 1, 20000, 0),
		tx("s1", "2023-06-01", "BTC", KindSell, 1, 50000, 0),
		tx("r1", "2023-03-01", "ETH", KindStakingReward, 0.5, 2000, 0),
	)
	report, err := GenerateReport(ledger, 2023, FIFO, "CA", 24)
	if err != nil {
		t.Fatalf("GenerateReport() failed: %v", err)
	}

	s := report.Summary
	// 30k short-term gain through the ordinary brackets.
	if !s.EstimatedFederalTax.Equal(USD(3380)) {
		t.Errorf("federal tax = %s, want $3,380.00", s.EstimatedFederalTax)
	}
	// 30k at California's flat 9.3%.
	if !s.EstimatedStateTax.Equal(USD(2790)) {
		t.Errorf("state tax = %s, want $2,790.00", s.EstimatedStateTax)
	}
	// $1,000 staking income at the 24% marginal bracket.
	if !s.StakingIncome.Equal(USD(1000)) {
		t.Errorf("staking income = %s, want $1,000.00", s.StakingIncome)
	}
	if !s.EstimatedIncomeTax.Equal(USD(240)) {
		t.Errorf("income tax = %s, want $240.00", s.EstimatedIncomeTax)
	}
	if !s.EstimatedTotalTax.Equal(USD(6410)) {
		t.Errorf("total tax = %s, want $6,410.00", s.EstimatedTotalTax)
	}
}

func TestGenerateReport_StakingRewardDisposalHasZeroBasis(t *testing.T) {
	ledger := mustLedger(t,
		tx("r1", "2023-01-01", "ETH", KindStakingReward, 1, 2000, 0),
		tx("s1", "2023-06-01", "ETH", KindSell, 1, 2500, 0),
	)
	report, err := GenerateReport(ledger, 2023, FIFO, "", 22)
	if err != nil {
		t.Fatalf("GenerateReport() failed: %v", err)
	}

	e := report.TaxableEvents[0]
	if !e.CostBasis.IsZero() {
		t.Errorf("cost basis = %s, want $0.00", e.CostBasis)
	}
	if !e.GainLoss.Equal(USD(2500)) {
		t.Errorf("gain = %s, want $2,500.00", e.GainLoss)
	}
	// The reward's USD value at receipt is income, on top of the gain.
	if !report.Summary.StakingIncome.Equal(USD(2000)) {
		t.Errorf("staking income = %s, want $2,000.00", report.Summary.StakingIncome)
	}
}

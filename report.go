package cryptotax

import "errors"

// TaxReport is the engine's single output: a year-level summary plus the
// taxable events behind it. It is immutable once produced; a different year
// or method produces a new report, never a mutation of an old one.
type TaxReport struct {
	Summary       TaxReportSummary
	TaxableEvents []TaxableEvent
}

// TaxReportSummary aggregates one tax year under one cost-basis method.
//
// Gains and losses are kept gross per holding period; losses are negative.
// Estimated taxes are estimates only: the progressive tables are applied to
// the net gains in isolation, and ordinary income is taxed at the
// user-supplied marginal bracket.
type TaxReportSummary struct {
	Year    int
	Method  CostBasisMethod
	State   string
	Bracket Percent

	ShortTermGains  Money
	ShortTermLosses Money
	NetShortTerm    Money
	LongTermGains   Money
	LongTermLosses  Money
	NetLongTerm     Money

	WashSalesDisallowed Money

	StakingIncome Money
	OtherIncome   Money
	TotalIncome   Money

	EstimatedFederalTax Money
	EstimatedStateTax   Money
	EstimatedIncomeTax  Money
	EstimatedTotalTax   Money

	// StateUnsupported marks a federal-only estimate because the state code
	// is not in the rate table. The engine never silently assumes 0%.
	StateUnsupported bool
}

// GenerateReport computes the tax report for one year of a ledger snapshot.
//
// The whole computation is synchronous and in-memory: one chronological
// replay builds lots and events (wash sales included), then the year's
// events and income are aggregated. Either a complete report is returned or
// an error; no partial state escapes. A year with no activity yields a
// valid zero summary.
func GenerateReport(ledger *Ledger, year int, method CostBasisMethod, state string, bracket Percent) (*TaxReport, error) {
	r := newReplay(method)
	r.wash = newWashSaleDetector(ledger.transactions)
	if err := r.run(ledger.transactions); err != nil {
		return nil, err
	}

	var events []TaxableEvent
	for _, e := range r.events {
		if e.DisposedAt.Year() == year {
			events = append(events, *e)
		}
	}

	income := ClassifyIncome(ledger.InYear(year))
	summary, err := aggregate(events, income, year, method, bracket, state)
	if err != nil {
		return nil, err
	}
	return &TaxReport{Summary: summary, TaxableEvents: events}, nil
}

// aggregate rolls taxable events and income into the year summary and
// applies the rate tables.
func aggregate(events []TaxableEvent, income Income, year int, method CostBasisMethod, bracket Percent, state string) (TaxReportSummary, error) {
	s := TaxReportSummary{
		Year:    year,
		Method:  method,
		State:   state,
		Bracket: bracket,
	}

	for i := range events {
		e := &events[i]
		gain := e.UsableGainLoss()
		s.WashSalesDisallowed = s.WashSalesDisallowed.Add(e.WashSaleDisallowed)
		switch e.HoldingPeriod {
		case ShortTerm:
			if gain.IsNegative() {
				s.ShortTermLosses = s.ShortTermLosses.Add(gain)
			} else {
				s.ShortTermGains = s.ShortTermGains.Add(gain)
			}
		case LongTerm:
			if gain.IsNegative() {
				s.LongTermLosses = s.LongTermLosses.Add(gain)
			} else {
				s.LongTermGains = s.LongTermGains.Add(gain)
			}
		}
	}
	s.NetShortTerm = s.ShortTermGains.Add(s.ShortTermLosses)
	s.NetLongTerm = s.LongTermGains.Add(s.LongTermLosses)

	s.StakingIncome = income.Staking
	s.OtherIncome = income.Other
	s.TotalIncome = income.Total()

	// Federal: ordinary brackets on the net short-term gain, 0/15/20 tiers
	// on the net long-term gain. Net losses reduce the taxable amount to
	// zero, never below.
	s.EstimatedFederalTax = progressiveTax(s.NetShortTerm, federalOrdinaryBrackets).
		Add(progressiveTax(s.NetLongTerm, federalLongTermTiers))

	rate, err := stateRate(state)
	if err != nil {
		var unsupported *UnsupportedStateError
		if !errors.As(err, &unsupported) {
			return TaxReportSummary{}, err
		}
		s.StateUnsupported = true
	} else {
		netTaxable := s.NetShortTerm.Add(s.NetLongTerm)
		if netTaxable.IsPositive() {
			s.EstimatedStateTax = netTaxable.MulPercent(rate)
		}
	}

	s.EstimatedIncomeTax = s.TotalIncome.MulPercent(bracket)
	s.EstimatedTotalTax = s.EstimatedFederalTax.Add(s.EstimatedStateTax).Add(s.EstimatedIncomeTax)
	return s, nil
}

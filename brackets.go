package cryptotax

import (
	"fmt"
	"strings"
)

// taxBracket is one tier of a progressive rate table. A zero upTo marks the
// unbounded top tier.
type taxBracket struct {
	upTo Money
	rate Percent
}

// Federal single-filer tables, 2023 tax year. Short-term gains use the
// ordinary-income brackets, long-term gains the 0/15/20 tiers.
var (
	federalOrdinaryBrackets = []taxBracket{
		{USD(11000), 10},
		{USD(44725), 12},
		{USD(95375), 22},
		{USD(182100), 24},
		{USD(231250), 32},
		{USD(578125), 35},
		{Money{}, 37},
	}

	federalLongTermTiers = []taxBracket{
		{USD(44625), 0},
		{USD(492300), 15},
		{Money{}, 20},
	}
)

// progressiveTax applies a bracket table to a taxable amount. The amount is
// taxed in isolation: the engine has no view of the filer's other income.
// A non-positive amount yields zero.
func progressiveTax(taxable Money, table []taxBracket) Money {
	tax := USD(0)
	if !taxable.IsPositive() {
		return tax
	}
	remaining := taxable
	floor := USD(0)
	for _, b := range table {
		if !remaining.IsPositive() {
			break
		}
		span := remaining
		if !b.upTo.IsZero() {
			width := b.upTo.Sub(floor)
			if width.LessThan(span) {
				span = width
			}
			floor = b.upTo
		}
		tax = tax.Add(span.MulPercent(b.rate))
		remaining = remaining.Sub(span)
	}
	return tax
}

// stateRates is a deliberately simplified flat per-state table: one marginal
// rate per state, no progressive state brackets. States without an income
// tax are listed explicitly at zero so they are distinguishable from states
// the table simply does not cover.
var stateRates = map[string]Percent{
	"AK": 0, "AZ": 2.5, "CA": 9.3, "CO": 4.4, "CT": 6.99,
	"FL": 0, "GA": 5.75, "IL": 4.95, "MA": 5.0, "MI": 4.25,
	"MN": 7.85, "NC": 4.75, "NH": 0, "NJ": 6.37, "NV": 0,
	"NY": 6.85, "OH": 3.5, "OR": 9.9, "PA": 3.07, "SD": 0,
	"TN": 0, "TX": 0, "UT": 4.65, "VA": 5.75, "WA": 0,
	"WI": 5.3, "WY": 0,
}

// UnsupportedStateError reports a state code missing from the rate table.
// The aggregator falls back to a federal-only estimate and flags the
// summary; it never silently assumes 0%.
type UnsupportedStateError struct {
	State string
}

func (e *UnsupportedStateError) Error() string {
	return fmt.Sprintf("state %q is not in the rate table", e.State)
}

// stateRate looks up the flat rate for a 2-letter state code.
// The empty string means no state estimate was requested.
func stateRate(state string) (Percent, error) {
	if state == "" {
		return 0, nil
	}
	rate, ok := stateRates[strings.ToUpper(state)]
	if !ok {
		return 0, &UnsupportedStateError{State: state}
	}
	return rate, nil
}

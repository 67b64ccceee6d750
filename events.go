package cryptotax

import "time"

// HoldingPeriod classifies a taxable event at the one-year boundary.
type HoldingPeriod int

const (
	ShortTerm HoldingPeriod = iota
	LongTerm
)

func (h HoldingPeriod) String() string {
	switch h {
	case ShortTerm:
		return "short_term"
	case LongTerm:
		return "long_term"
	default:
		return "unknown"
	}
}

// longTermThreshold is the strict holding period boundary: exactly 365 days
// is still short-term, anything beyond is long-term.
const longTermThreshold = 365 * 24 * time.Hour

func holdingPeriod(acquiredAt, disposedAt time.Time) HoldingPeriod {
	if disposedAt.Sub(acquiredAt) > longTermThreshold {
		return LongTerm
	}
	return ShortTerm
}

// TaxableEvent is one (disposal transaction x consumed lot) pairing with its
// full tax description. Events are derived values; only the wash sale
// detector may touch one after creation, and only to set WashSaleDisallowed.
type TaxableEvent struct {
	ID                 string
	Asset              string
	DisposedAt         time.Time
	AcquiredAt         time.Time
	Amount             Quantity
	Proceeds           Money
	CostBasis          Money
	GainLoss           Money
	HoldingPeriod      HoldingPeriod
	WashSaleDisallowed Money

	// sourceLotTransactionID is the origin of the consumed lot, needed by
	// the wash sale detector to exclude the lot's own acquisition.
	sourceLotTransactionID string
}

// UsableLoss is the gain/loss after the wash sale adjustment: a fully
// disallowed loss contributes zero.
func (e *TaxableEvent) UsableGainLoss() Money {
	return e.GainLoss.Add(e.WashSaleDisallowed)
}

// buildEvents maps each consumption of one disposal to a taxable event.
//
// The disposal fee is pro-rated against proceeds in proportion to the
// quantity taken from each lot. The cost basis is the consumed quantity at
// the lot's unit basis as of consumption time.
func buildEvents(consumptions []LotConsumption, lots map[string]*TaxLot, disposal Transaction) []*TaxableEvent {
	events := make([]*TaxableEvent, 0, len(consumptions))
	for _, c := range consumptions {
		lot := lots[c.LotID]
		proceeds := disposal.PricePerUnit.Mul(c.Amount).Sub(disposal.Fee.Mul(c.Amount).Div(disposal.Amount))
		basis := lot.UnitCostBasis.Mul(c.Amount)
		events = append(events, &TaxableEvent{
			ID:                     disposal.ID + ":" + c.LotID,
			Asset:                  disposal.Asset,
			DisposedAt:             disposal.Timestamp,
			AcquiredAt:             lot.AcquiredAt,
			Amount:                 c.Amount,
			Proceeds:               proceeds,
			CostBasis:              basis,
			GainLoss:               proceeds.Sub(basis),
			HoldingPeriod:          holdingPeriod(lot.AcquiredAt, disposal.Timestamp),
			sourceLotTransactionID: lot.SourceTransactionID,
		})
	}
	return events
}

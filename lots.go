package cryptotax

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// TaxLot is an unconsumed (or partially consumed) quantity of an asset
// acquired at one point in time.
//
// A lot is created exactly once per acquisition transaction. RemainingAmount
// only ever decreases; the lot leaves the open pool when it reaches zero.
type TaxLot struct {
	ID                  string
	Asset               string
	AcquiredAt          time.Time
	OriginalAmount      Quantity
	RemainingAmount     Quantity
	UnitCostBasis       Money
	SourceTransactionID string
}

// newLot opens a lot for an acquisition transaction.
//
// The acquisition fee is folded into the unit cost basis. Staking rewards
// enter the pool with a zero basis: their USD value at receipt is ordinary
// income, not basis.
func newLot(tx Transaction) *TaxLot {
	basis := USD(0)
	if tx.Kind != KindStakingReward {
		basis = tx.PricePerUnit.Add(tx.Fee.Div(tx.Amount))
	}
	return &TaxLot{
		ID:                  tx.ID,
		Asset:               tx.Asset,
		AcquiredAt:          tx.Timestamp,
		OriginalAmount:      tx.Amount,
		RemainingAmount:     tx.Amount,
		UnitCostBasis:       basis,
		SourceTransactionID: tx.ID,
	}
}

// LotConsumption records one disposal taking quantity from one lot.
type LotConsumption struct {
	LotID                 string
	DisposalTransactionID string
	Amount                Quantity
}

// InsufficientLotsError reports a disposal that exceeds the open lot
// quantity for an asset. The matcher never fabricates a zero-basis lot to
// cover the shortfall: that would silently misstate gains.
type InsufficientLotsError struct {
	Asset         string
	Shortfall     Quantity
	TransactionID string
}

func (e *InsufficientLotsError) Error() string {
	return fmt.Sprintf("insufficient open lots for %s: transaction %q short by %s",
		e.Asset, e.TransactionID, e.Shortfall)
}

// lotPool holds the open lots of a single asset in acquisition order.
type lotPool struct {
	lots []*TaxLot
}

func (p *lotPool) add(lot *TaxLot) {
	p.lots = append(p.lots, lot)
}

// open returns the lots with remaining quantity, ordered by the method's
// selection key. Ties keep insertion order (acquisitions are appended
// chronologically, with the source transaction id as secondary sort at
// ledger level), so selection is deterministic.
func (p *lotPool) open(method CostBasisMethod) []*TaxLot {
	var open []*TaxLot
	for _, lot := range p.lots {
		if lot.RemainingAmount.IsPositive() {
			open = append(open, lot)
		}
	}
	switch method {
	case FIFO:
		// insertion order is already ascending acquisition order
	case LIFO:
		slices.SortStableFunc(open, func(a, b *TaxLot) int {
			return b.AcquiredAt.Compare(a.AcquiredAt)
		})
	case HIFO:
		slices.SortStableFunc(open, func(a, b *TaxLot) int {
			if c := b.UnitCostBasis.Decimal().Cmp(a.UnitCostBasis.Decimal()); c != 0 {
				return c
			}
			return strings.Compare(a.SourceTransactionID, b.SourceTransactionID)
		})
	}
	return open
}

// consume satisfies a disposal greedily from the method-ordered open lots.
func (p *lotPool) consume(tx Transaction, method CostBasisMethod) ([]LotConsumption, error) {
	need := tx.Amount
	var consumptions []LotConsumption
	for _, lot := range p.open(method) {
		if !need.IsPositive() {
			break
		}
		take := lot.RemainingAmount
		if take.GreaterThan(need) {
			take = need
		}
		lot.RemainingAmount = lot.RemainingAmount.Sub(take)
		need = need.Sub(take)
		consumptions = append(consumptions, LotConsumption{
			LotID:                 lot.ID,
			DisposalTransactionID: tx.ID,
			Amount:                take,
		})
	}
	if need.IsPositive() {
		return nil, &InsufficientLotsError{Asset: tx.Asset, Shortfall: need, TransactionID: tx.ID}
	}
	return consumptions, nil
}

// remaining sums the open quantity of the pool.
func (p *lotPool) remaining() Quantity {
	total := Q(0)
	for _, lot := range p.lots {
		total = total.Add(lot.RemainingAmount)
	}
	return total
}

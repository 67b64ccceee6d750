package cryptotax

import "time"

// washSaleWindow is the repurchase window on each side of a loss disposal.
const washSaleWindow = 30 * 24 * time.Hour

// washSaleDetector flags disallowed losses during the chronological replay.
//
// It is built from the full transaction list up front so that a repurchase
// *after* a loss disposal is visible at the moment the loss is realized.
// The disallowed amount feeds back into the repurchase lot's unit cost
// basis: in place if the lot is already open, through pendingAdjustments if
// the repurchase is still ahead in the replay. Either way the adjusted basis
// is in effect before the next disposal is matched.
type washSaleDetector struct {
	acquisitions map[string][]Transaction // per asset, chronological
	pending      map[string]Money         // acquisition tx id -> disallowed USD to fold in
}

func newWashSaleDetector(txs []Transaction) *washSaleDetector {
	d := &washSaleDetector{
		acquisitions: make(map[string][]Transaction),
		pending:      make(map[string]Money),
	}
	for _, tx := range txs {
		if tx.Kind.IsAcquisition() {
			d.acquisitions[tx.Asset] = append(d.acquisitions[tx.Asset], tx)
		}
	}
	return d
}

// pendingAdjustment returns the basis adjustment accumulated for an
// acquisition that had not yet entered the pool when a wash sale named it.
func (d *washSaleDetector) pendingAdjustment(txID string) (Money, bool) {
	adj, ok := d.pending[txID]
	return adj, ok
}

// inspect screens the events of one disposal. For each loss it looks for the
// earliest qualifying repurchase of the same asset within the 30-day window,
// excluding the disposed lot's own origin. A hit disallows the loss on the
// event and raises the repurchase lot's unit basis by the disallowed amount
// spread over the lot's original quantity.
//
// Events already carrying a disallowance are left alone, so running the
// detector again over the same events changes nothing.
func (d *washSaleDetector) inspect(events []*TaxableEvent, lotsBySourceTx map[string]*TaxLot) {
	for _, e := range events {
		if !e.GainLoss.IsNegative() || !e.WashSaleDisallowed.IsZero() {
			continue
		}
		repurchase, ok := d.findRepurchase(e)
		if !ok {
			continue
		}
		disallowed := e.GainLoss.Neg()
		e.WashSaleDisallowed = disallowed

		if lot, open := lotsBySourceTx[repurchase.ID]; open {
			lot.UnitCostBasis = lot.UnitCostBasis.Add(disallowed.Div(lot.OriginalAmount))
		} else {
			d.pending[repurchase.ID] = d.pending[repurchase.ID].Add(disallowed)
		}
	}
}

func (d *washSaleDetector) findRepurchase(e *TaxableEvent) (Transaction, bool) {
	from := e.DisposedAt.Add(-washSaleWindow)
	to := e.DisposedAt.Add(washSaleWindow)
	for _, tx := range d.acquisitions[e.Asset] {
		if tx.Timestamp.After(to) {
			break
		}
		if tx.Timestamp.Before(from) || tx.ID == e.sourceLotTransactionID {
			continue
		}
		return tx, true
	}
	return Transaction{}, false
}

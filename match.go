package cryptotax

// replay walks a chronologically sorted transaction stream once,
// maintaining an open-lot pool per asset. Acquisitions open lots, disposals
// consume them under the configured method and emit taxable events.
// With a wash sale detector attached, loss events are screened as they are
// emitted so basis adjustments take effect before the next disposal.
type replay struct {
	method         CostBasisMethod
	pools          map[string]*lotPool
	lotsBySourceTx map[string]*TaxLot
	consumptions   []LotConsumption
	events         []*TaxableEvent
	wash           *washSaleDetector // nil disables wash sale detection
}

func newReplay(method CostBasisMethod) *replay {
	return &replay{
		method:         method,
		pools:          make(map[string]*lotPool),
		lotsBySourceTx: make(map[string]*TaxLot),
	}
}

func (r *replay) pool(asset string) *lotPool {
	p, ok := r.pools[asset]
	if !ok {
		p = &lotPool{}
		r.pools[asset] = p
	}
	return p
}

func (r *replay) run(txs []Transaction) error {
	for _, tx := range txs {
		switch {
		case tx.Kind.IsAcquisition():
			r.acquire(tx)
		case tx.Kind.IsDisposal():
			if err := r.dispose(tx); err != nil {
				return err
			}
		default:
			return &ValidationError{TransactionID: tx.ID, Reason: "unknown kind " + string(tx.Kind)}
		}
	}
	return nil
}

func (r *replay) acquire(tx Transaction) {
	lot := newLot(tx)
	if r.wash != nil {
		if adj, ok := r.wash.pendingAdjustment(tx.ID); ok {
			lot.UnitCostBasis = lot.UnitCostBasis.Add(adj.Div(lot.OriginalAmount))
		}
	}
	r.pool(tx.Asset).add(lot)
	r.lotsBySourceTx[tx.ID] = lot
}

func (r *replay) dispose(tx Transaction) error {
	consumptions, err := r.pool(tx.Asset).consume(tx, r.method)
	if err != nil {
		return err
	}
	r.consumptions = append(r.consumptions, consumptions...)

	events := buildEvents(consumptions, r.lotsByID(consumptions), tx)
	if r.wash != nil {
		r.wash.inspect(events, r.lotsBySourceTx)
	}
	r.events = append(r.events, events...)
	return nil
}

func (r *replay) lotsByID(consumptions []LotConsumption) map[string]*TaxLot {
	lots := make(map[string]*TaxLot, len(consumptions))
	for _, c := range consumptions {
		// lot ids are the source transaction ids: one lot per acquisition
		lots[c.LotID] = r.lotsBySourceTx[c.LotID]
	}
	return lots
}

// MatchLots converts acquisitions into lots and consumes them against
// disposals under the given method, without wash sale screening.
//
// It is pure and deterministic: transactions are sorted chronologically
// (ties broken by id) and each call builds its own lot pools.
func MatchLots(transactions []Transaction, method CostBasisMethod) ([]LotConsumption, error) {
	sorted := make([]Transaction, len(transactions))
	copy(sorted, transactions)
	sortTransactions(sorted)

	r := newReplay(method)
	if err := r.run(sorted); err != nil {
		return nil, err
	}
	return r.consumptions, nil
}

package cryptotax

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Ledger is an immutable, chronologically sorted snapshot of transactions.
//
// A Ledger is valid by construction: NewLedger validates every transaction
// and rejects a disposal recorded before any acquisition of the same asset.
type Ledger struct {
	transactions []Transaction
}

// NewLedger validates and sorts the given transactions into a ledger.
func NewLedger(txs ...Transaction) (*Ledger, error) {
	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)

	seen := make(map[string]bool, len(sorted))
	for _, tx := range sorted {
		if err := tx.Validate(); err != nil {
			return nil, err
		}
		if seen[tx.ID] {
			return nil, &ValidationError{TransactionID: tx.ID, Reason: "duplicate transaction id"}
		}
		seen[tx.ID] = true
	}

	sortTransactions(sorted)

	// A disposal with no prior acquisition of the asset is a data problem,
	// not a shortfall: the matcher never sees it.
	acquired := make(map[string]bool)
	for _, tx := range sorted {
		if tx.Kind.IsAcquisition() {
			acquired[tx.Asset] = true
		} else if !acquired[tx.Asset] {
			return nil, &ValidationError{TransactionID: tx.ID, Reason: fmt.Sprintf("disposal of %s before any acquisition", tx.Asset)}
		}
	}

	return &Ledger{transactions: sorted}, nil
}

// sortTransactions sorts chronologically, breaking timestamp ties by
// transaction id so replays are deterministic.
func sortTransactions(txs []Transaction) {
	slices.SortStableFunc(txs, func(a, b Transaction) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}

func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of the sorted transactions.
func (l *Ledger) Transactions() []Transaction {
	return slices.Clone(l.transactions)
}

// All iterates over the sorted transactions without copying.
func (l *Ledger) All() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// Assets returns the distinct asset symbols, sorted.
func (l *Ledger) Assets() []string {
	set := make(map[string]bool)
	for _, tx := range l.transactions {
		set[tx.Asset] = true
	}
	assets := make([]string, 0, len(set))
	for a := range set {
		assets = append(assets, a)
	}
	slices.Sort(assets)
	return assets
}

// InYear returns the transactions whose timestamp falls in the given year.
func (l *Ledger) InYear(year int) []Transaction {
	var out []Transaction
	for _, tx := range l.transactions {
		if tx.Timestamp.Year() == year {
			out = append(out, tx)
		}
	}
	return out
}

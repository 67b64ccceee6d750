package cryptotax

import (
	"testing"
	"time"
)

// day parses a YYYY-MM-DD test date at midnight UTC.
func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// tx builds a test transaction with the given fields.
func tx(id, date, asset string, kind TxKind, amount, price, fee float64) Transaction {
	return Transaction{
		ID:           id,
		Asset:        asset,
		Kind:         kind,
		Amount:       Q(amount),
		PricePerUnit: USD(price),
		Fee:          USD(fee),
		Timestamp:    day(date),
	}
}

func mustLedger(t *testing.T, txs ...Transaction) *Ledger {
	t.Helper()
	l, err := NewLedger(txs...)
	if err != nil {
		t.Fatalf("NewLedger() failed: %v", err)
	}
	return l
}

package cryptotax

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jtransaction is the on-disk shape of a ledger line.
type jtransaction struct {
	ID           string          `json:"id"`
	Asset        string          `json:"asset"`
	Kind         TxKind          `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	Fee          decimal.Decimal `json:"fee,omitempty"`
	Timestamp    string          `json:"timestamp"`
	Exchange     string          `json:"exchange,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

// DecodeLedger reads a JSONL stream, one transaction per line, and returns a
// validated, sorted ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		var jt jtransaction
		if err := json.Unmarshal(line, &jt); err != nil {
			return nil, fmt.Errorf("cannot parse ledger line %q: %w", string(line), err)
		}
		ts, err := time.Parse(time.RFC3339, jt.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("cannot parse timestamp in line %q: %w", string(line), err)
		}
		txs = append(txs, Transaction{
			ID:           jt.ID,
			Asset:        jt.Asset,
			Kind:         jt.Kind,
			Amount:       Q(jt.Amount),
			PricePerUnit: USD(jt.PricePerUnit),
			Fee:          USD(jt.Fee),
			Timestamp:    ts,
			Exchange:     jt.Exchange,
			Notes:        jt.Notes,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewLedger(txs...)
}

// EncodeLedger writes the ledger in its canonical JSONL form: one
// transaction per line, chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, tx := range l.transactions {
		jt := jtransaction{
			ID:           tx.ID,
			Asset:        tx.Asset,
			Kind:         tx.Kind,
			Amount:       tx.Amount.Decimal(),
			PricePerUnit: tx.PricePerUnit.Decimal(),
			Fee:          tx.Fee.Decimal(),
			Timestamp:    tx.Timestamp.Format(time.RFC3339),
			Exchange:     tx.Exchange,
			Notes:        tx.Notes,
		}
		line, err := json.Marshal(jt)
		if err != nil {
			return fmt.Errorf("cannot encode transaction %q: %w", tx.ID, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

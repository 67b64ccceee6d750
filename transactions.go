package cryptotax

import (
	"fmt"
	"time"
)

// TxKind is a typed string identifying the kind of a ledger transaction.
//
// The set is closed: validation rejects any other value, and every switch
// over a TxKind in this package errors on an unknown kind instead of
// silently falling through.
type TxKind string

const (
	KindBuy           TxKind = "buy"
	KindSell          TxKind = "sell"
	KindTransferIn    TxKind = "transfer_in"
	KindTransferOut   TxKind = "transfer_out"
	KindStakingReward TxKind = "staking_reward"
)

// IsAcquisition reports whether the kind opens a new tax lot.
func (k TxKind) IsAcquisition() bool {
	return k == KindBuy || k == KindTransferIn || k == KindStakingReward
}

// IsDisposal reports whether the kind consumes open lots.
func (k TxKind) IsDisposal() bool {
	return k == KindSell || k == KindTransferOut
}

// IsIncome reports whether the kind generates ordinary income on receipt.
func (k TxKind) IsIncome() bool {
	return k == KindStakingReward
}

func (k TxKind) valid() bool {
	return k.IsAcquisition() || k.IsDisposal()
}

// Transaction is a single validated ledger entry for one asset.
//
// Transactions are supplied by external collaborators (exchange importers,
// manual entry) and are treated as read-only input by the engine.
type Transaction struct {
	ID           string    `json:"id"`
	Asset        string    `json:"asset"`
	Kind         TxKind    `json:"kind"`
	Amount       Quantity  `json:"amount"`
	PricePerUnit Money     `json:"pricePerUnit"`
	Fee          Money     `json:"fee"`
	Timestamp    time.Time `json:"timestamp"`
	Exchange     string    `json:"exchange,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

// ValidationError reports a malformed transaction. The ledger rejects it
// before any matching begins.
type ValidationError struct {
	TransactionID string
	Reason        string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid transaction %q: %s", e.TransactionID, e.Reason)
}

// Validate checks the transaction fields in isolation.
// Cross-transaction checks (disposal before any acquisition) belong to the
// ledger.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return &ValidationError{TransactionID: t.ID, Reason: "missing id"}
	}
	if t.Asset == "" {
		return &ValidationError{TransactionID: t.ID, Reason: "missing asset symbol"}
	}
	if !t.Kind.valid() {
		return &ValidationError{TransactionID: t.ID, Reason: fmt.Sprintf("unknown kind %q", t.Kind)}
	}
	if !t.Amount.IsPositive() {
		return &ValidationError{TransactionID: t.ID, Reason: "amount must be positive"}
	}
	if t.PricePerUnit.IsNegative() {
		return &ValidationError{TransactionID: t.ID, Reason: "price per unit must not be negative"}
	}
	if t.Fee.IsNegative() {
		return &ValidationError{TransactionID: t.ID, Reason: "fee must not be negative"}
	}
	if t.Timestamp.IsZero() {
		return &ValidationError{TransactionID: t.ID, Reason: "missing timestamp"}
	}
	return nil
}

// IncomeValue is the USD value of the transaction at receipt, the amount
// recognized as ordinary income for income-generating kinds.
func (t Transaction) IncomeValue() Money {
	return t.PricePerUnit.Mul(t.Amount)
}

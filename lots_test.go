package cryptotax

import (
	"errors"
	"testing"
)

// threeLots is a pool of three 1.0 BTC lots with distinct dates and bases:
// b1 is oldest and cheapest, b2 is the most expensive, b3 is newest.
func threeLots() []Transaction {
	return []Transaction{
		tx("b1", "2023-01-01", "BTC", KindBuy, 1, 100, 0),
		tx("b2", "2023-02-01", "BTC", KindBuy, 1, 300, 0),
		tx("b3", "2023-03-01", "BTC", KindBuy, 1, 200, 0),
	}
}

func TestMatchLots_MethodSelection(t *testing.T) {
	testCases := []struct {
		name     string
		method   CostBasisMethod
		wantLots []string
	}{
		{name: "fifo oldest first", method: FIFO, wantLots: []string{"b1", "b2"}},
		{name: "lifo newest first", method: LIFO, wantLots: []string{"b3", "b2"}},
		{name: "hifo highest basis first", method: HIFO, wantLots: []string{"b2", "b3"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			txs := append(threeLots(), tx("s1", "2023-06-01", "BTC", KindSell, 1.5, 400, 0))
			consumptions, err := MatchLots(txs, tc.method)
			if err != nil {
				t.Fatalf("MatchLots() failed: %v", err)
			}
			if len(consumptions) != 2 {
				t.Fatalf("got %d consumptions, want 2", len(consumptions))
			}
			for i, want := range tc.wantLots {
				if consumptions[i].LotID != want {
					t.Errorf("consumption %d from lot %q, want %q", i, consumptions[i].LotID, want)
				}
			}
			if !consumptions[0].Amount.Equal(Q(1)) {
				t.Errorf("first consumption = %s, want 1", consumptions[0].Amount)
			}
			if !consumptions[1].Amount.Equal(Q(0.5)) {
				t.Errorf("second consumption = %s, want 0.5", consumptions[1].Amount)
			}
		})
	}
}

func TestMatchLots_HIFOTieBreakIsDeterministic(t *testing.T) {
	txs := []Transaction{
		tx("b2", "2023-02-01", "BTC", KindBuy, 1, 100, 0),
		tx("b1", "2023-01-01", "BTC", KindBuy, 1, 100, 0),
		tx("s1", "2023-06-01", "BTC", KindSell, 0.5, 200, 0),
	}
	consumptions, err := MatchLots(txs, HIFO)
	if err != nil {
		t.Fatalf("MatchLots() failed: %v", err)
	}
	// Equal bases tie-break on the source transaction id.
	if consumptions[0].LotID != "b1" {
		t.Errorf("consumed lot %q, want b1", consumptions[0].LotID)
	}
}

func TestMatchLots_PartialConsumptionCarriesOver(t *testing.T) {
	txs := []Transaction{
		tx("b1", "2023-01-01", "BTC", KindBuy, 1, 100, 0),
		tx("s1", "2023-02-01", "BTC", KindSell, 0.25, 150, 0),
		tx("s2", "2023-03-01", "BTC", KindSell, 0.75, 160, 0),
	}
	consumptions, err := MatchLots(txs, FIFO)
	if err != nil {
		t.Fatalf("MatchLots() failed: %v", err)
	}
	if len(consumptions) != 2 {
		t.Fatalf("got %d consumptions, want 2", len(consumptions))
	}
	for _, c := range consumptions {
		if c.LotID != "b1" {
			t.Errorf("consumed lot %q, want b1", c.LotID)
		}
	}
	if !consumptions[0].Amount.Equal(Q(0.25)) || !consumptions[1].Amount.Equal(Q(0.75)) {
		t.Errorf("consumed amounts = %s, %s, want 0.25, 0.75", consumptions[0].Amount, consumptions[1].Amount)
	}
}

func TestMatchLots_InsufficientLots(t *testing.T) {
	txs := []Transaction{
		tx("b1", "2023-01-01", "BTC", KindBuy, 1, 20000, 0),
		tx("s1", "2023-06-01", "BTC", KindSell, 2, 50000, 0),
	}
	_, err := MatchLots(txs, FIFO)
	var ierr *InsufficientLotsError
	if !errors.As(err, &ierr) {
		t.Fatalf("MatchLots() = %v, want *InsufficientLotsError", err)
	}
	if ierr.Asset != "BTC" {
		t.Errorf("Asset = %q, want BTC", ierr.Asset)
	}
	if !ierr.Shortfall.Equal(Q(1)) {
		t.Errorf("Shortfall = %s, want 1", ierr.Shortfall)
	}
	if ierr.TransactionID != "s1" {
		t.Errorf("TransactionID = %q, want s1", ierr.TransactionID)
	}
}

// Whatever the method, the consumed quantity equals the disposed quantity and
// no lot gives more than it holds.
func TestMatchLots_Conservation(t *testing.T) {
	txs := append(threeLots(),
		tx("s1", "2023-04-01", "BTC", KindSell, 1.2, 400, 0),
		tx("s2", "2023-05-01", "BTC", KindSell, 0.9, 500, 0),
	)

	for _, method := range []CostBasisMethod{FIFO, LIFO, HIFO} {
		t.Run(method.String(), func(t *testing.T) {
			consumptions, err := MatchLots(txs, method)
			if err != nil {
				t.Fatalf("MatchLots() failed: %v", err)
			}
			total := Q(0)
			perLot := make(map[string]Quantity)
			for _, c := range consumptions {
				total = total.Add(c.Amount)
				perLot[c.LotID] = perLot[c.LotID].Add(c.Amount)
			}
			if !total.Equal(Q(2.1)) {
				t.Errorf("total consumed = %s, want 2.1", total)
			}
			for lot, amount := range perLot {
				if amount.GreaterThan(Q(1)) {
					t.Errorf("lot %s over-consumed: %s", lot, amount)
				}
			}
		})
	}
}

func TestNewLot_FeeFoldedIntoBasis(t *testing.T) {
	lot := newLot(tx("b1", "2023-01-01", "BTC", KindBuy, 2, 100, 10))
	if !lot.UnitCostBasis.Equal(USD(105)) {
		t.Errorf("UnitCostBasis = %s, want $105.00", lot.UnitCostBasis)
	}
}

func TestNewLot_StakingRewardHasZeroBasis(t *testing.T) {
	lot := newLot(tx("r1", "2023-01-01", "ETH", KindStakingReward, 0.5, 2000, 0))
	if !lot.UnitCostBasis.IsZero() {
		t.Errorf("UnitCostBasis = %s, want $0.00", lot.UnitCostBasis)
	}
}

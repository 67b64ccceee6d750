package cryptotax

import "testing"

func TestClassifyIncome(t *testing.T) {
	transactions := []Transaction{
		tx("b1", "2023-01-01", "BTC", KindBuy, 1, 20000, 0),
		tx("r1", "2023-02-01", "ETH", KindStakingReward, 0.5, 2000, 0),
		tx("r2", "2023-03-01", "ETH", KindStakingReward, 0.25, 2400, 0),
		tx("s1", "2023-06-01", "BTC", KindSell, 1, 50000, 0),
	}

	income := ClassifyIncome(transactions)
	if !income.Staking.Equal(USD(1600)) {
		t.Errorf("Staking = %s, want $1,600.00", income.Staking)
	}
	if !income.Other.IsZero() {
		t.Errorf("Other = %s, want $0.00", income.Other)
	}
	if !income.Total().Equal(USD(1600)) {
		t.Errorf("Total() = %s, want $1,600.00", income.Total())
	}
}

func TestClassifyIncome_Empty(t *testing.T) {
	income := ClassifyIncome(nil)
	if !income.Total().IsZero() {
		t.Errorf("Total() = %s, want $0.00", income.Total())
	}
}

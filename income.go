package cryptotax

// Income separates ordinary-income-generating transactions from capital
// transactions. Ordinary income is taxed at the filer's marginal rate
// regardless of holding period; no gain/loss math applies.
type Income struct {
	Staking Money
	Other   Money
}

func (i Income) Total() Money { return i.Staking.Add(i.Other) }

// ClassifyIncome sums the USD value at receipt of every income-generating
// transaction. Staking rewards land in Staking; any other income-flagged
// kind lands in Other.
func ClassifyIncome(transactions []Transaction) Income {
	var income Income
	for _, tx := range transactions {
		if !tx.Kind.IsIncome() {
			continue
		}
		switch tx.Kind {
		case KindStakingReward:
			income.Staking = income.Staking.Add(tx.IncomeValue())
		default:
			income.Other = income.Other.Add(tx.IncomeValue())
		}
	}
	return income
}

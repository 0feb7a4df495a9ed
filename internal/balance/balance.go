// Package balance computes per-member net balances from the expense
// ledger. All functions are pure; they never mutate their inputs.
package balance

import (
	"github.com/shopspring/decimal"

	"github.com/splittab-dev/splittab/internal/model"
)

// Compute maps every member to their net balance over all non-settled
// expenses. Positive means the member should receive money, negative
// means they owe. For each line item the consumer is debited and the
// payer credited by the item amount; a payer consuming their own item
// nets to zero, which is correct since they fronted the money for
// everyone including themselves.
//
// Names referenced by an expense but missing from members (stale
// references from a future member-removal path) are inserted with a
// zero starting balance rather than dropped.
func Compute(members []model.Member, expenses []model.Expense) map[model.Member]decimal.Decimal {
	balances := make(map[model.Member]decimal.Decimal, len(members))
	for _, m := range members {
		balances[m] = decimal.Zero
	}

	for _, ex := range expenses {
		if ex.Settled() {
			continue
		}
		for _, it := range ex.Items {
			balances[it.Consumer] = balances[it.Consumer].Sub(it.Amount)
			balances[ex.Payer] = balances[ex.Payer].Add(it.Amount)
		}
	}

	return balances
}

// TotalPending returns the sum of all line item amounts across
// non-settled expenses.
func TotalPending(expenses []model.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, ex := range expenses {
		if ex.Settled() {
			continue
		}
		total = total.Add(ex.Total())
	}
	return total
}

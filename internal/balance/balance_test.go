package balance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splittab-dev/splittab/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expense(id int64, payer string, status model.ExpenseStatus, items ...model.LineItem) model.Expense {
	return model.Expense{
		ID:     id,
		Payer:  model.Member(payer),
		Items:  items,
		Status: status,
		Date:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func item(name, amount, consumer string) model.LineItem {
	return model.LineItem{Name: name, Amount: dec(amount), Consumer: model.Member(consumer)}
}

func TestCompute_TeaScenario(t *testing.T) {
	members := []model.Member{"A", "B"}
	expenses := []model.Expense{
		expense(1, "A", model.StatusPending,
			item("tea", "10", "A"),
			item("tea", "10", "B"),
		),
	}

	got := Compute(members, expenses)

	assert.True(t, got["A"].Equal(dec("10")), "A: %s", got["A"])
	assert.True(t, got["B"].Equal(dec("-10")), "B: %s", got["B"])
	assert.True(t, TotalPending(expenses).Equal(dec("20")))
}

func TestCompute_SettledExcluded(t *testing.T) {
	members := []model.Member{"A", "B"}
	ex := expense(1, "A", model.StatusPending,
		item("tea", "10", "A"),
		item("tea", "10", "B"),
	)

	ex.Status = model.StatusSettled
	got := Compute(members, []model.Expense{ex})
	assert.True(t, got["A"].IsZero())
	assert.True(t, got["B"].IsZero())
	assert.True(t, TotalPending([]model.Expense{ex}).IsZero())

	// Flipping back restores the contribution identically.
	ex.Status = model.StatusPending
	got = Compute(members, []model.Expense{ex})
	assert.True(t, got["A"].Equal(dec("10")))
	assert.True(t, got["B"].Equal(dec("-10")))
}

func TestCompute_Conservation(t *testing.T) {
	members := []model.Member{"A", "B", "C"}
	expenses := []model.Expense{
		expense(1, "A", model.StatusPending,
			item("groceries", "123.45", "B"),
			item("groceries", "67.89", "C"),
			item("groceries", "11.11", "A"),
		),
		expense(2, "B", model.StatusPending,
			item("dinner", "450", "A"),
			item("dinner", "450", "C"),
		),
		expense(3, "C", model.StatusSettled,
			item("cab", "300", "A"),
		),
	}

	got := Compute(members, expenses)

	sum := decimal.Zero
	for _, b := range got {
		sum = sum.Add(b)
	}
	assert.True(t, sum.IsZero(), "sum of balances: %s", sum)
}

func TestCompute_MembersWithoutExpensesAreZero(t *testing.T) {
	members := []model.Member{"A", "B", "C"}

	got := Compute(members, nil)

	require.Len(t, got, 3)
	for m, b := range got {
		assert.True(t, b.IsZero(), "member %s: %s", m, b)
	}
}

func TestCompute_StaleReferencesGetZeroStart(t *testing.T) {
	// "Ghost" was removed from the group but still appears in history.
	members := []model.Member{"A"}
	expenses := []model.Expense{
		expense(1, "Ghost", model.StatusPending,
			item("snacks", "50", "A"),
		),
	}

	got := Compute(members, expenses)

	require.Contains(t, got, model.Member("Ghost"))
	assert.True(t, got["Ghost"].Equal(dec("50")))
	assert.True(t, got["A"].Equal(dec("-50")))
}

func TestCompute_PayerConsumingOwnItemNetsZero(t *testing.T) {
	members := []model.Member{"A"}
	expenses := []model.Expense{
		expense(1, "A", model.StatusPending, item("coffee", "40", "A")),
	}

	got := Compute(members, expenses)
	assert.True(t, got["A"].IsZero())
	assert.True(t, TotalPending(expenses).Equal(dec("40")))
}

func TestTotalPending_MixedStatuses(t *testing.T) {
	expenses := []model.Expense{
		expense(1, "A", model.StatusPending, item("tea", "10.50", "B")),
		expense(2, "B", model.StatusSettled, item("lunch", "200", "A")),
		expense(3, "A", model.StatusPending, item("milk", "32.25", "A")),
	}

	assert.True(t, TotalPending(expenses).Equal(dec("42.75")))
}

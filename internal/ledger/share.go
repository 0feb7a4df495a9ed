package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ShareText formats the expense matching id as a plain-text message:
// payer header, one line per item, total, and status. Pure formatting,
// no state change. URL-encoding for messaging apps is the caller's
// concern.
func (s *Store) ShareText(expenseID int64) (string, error) {
	ex, err := s.Expense(expenseID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Paid by %s\n", ex.Payer)
	for _, it := range ex.Items {
		fmt.Fprintf(&b, "- %s %s (%s)\n", it.Name, s.formatAmount(it.Amount), it.Consumer)
	}
	fmt.Fprintf(&b, "Total: %s\n", s.formatAmount(ex.Total()))
	fmt.Fprintf(&b, "Status: %s", ex.Status)
	return b.String(), nil
}

// formatAmount renders an amount with the configured currency symbol
// and two decimal places.
func (s *Store) formatAmount(d decimal.Decimal) string {
	return s.currency + d.StringFixed(2)
}

package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus is the lifecycle state of an expense.
type ExpenseStatus string

const (
	StatusPending ExpenseStatus = "pending"
	StatusSettled ExpenseStatus = "settled"
)

// LineItem is one purchased good within an expense, attributed to a
// single consumer.
type LineItem struct {
	Name     string
	Amount   decimal.Decimal // strictly positive
	Consumer Member
}

// Expense is one group purchase: a payer who fronted the money and a
// non-empty list of line items saying who consumed what.
type Expense struct {
	ID     int64 // creation time in milliseconds, unique per process
	Payer  Member
	Items  []LineItem
	Status ExpenseStatus
	Date   time.Time
}

// Total returns the sum of all line item amounts.
func (e Expense) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range e.Items {
		total = total.Add(it.Amount)
	}
	return total
}

// Settled reports whether the expense is excluded from balances.
func (e Expense) Settled() bool {
	return e.Status == StatusSettled
}

// Wire shapes. Amounts travel as bare JSON numbers and dates as
// ISO-8601 strings.

type lineItemJSON struct {
	Name     string      `json:"name"`
	Amount   json.Number `json:"amount"`
	Consumer string      `json:"consumer"`
}

type expenseJSON struct {
	ID     int64          `json:"id"`
	Payer  string         `json:"payer"`
	Items  []lineItemJSON `json:"items"`
	Status string         `json:"status"`
	Date   string         `json:"date"`
}

// MarshalJSON implements json.Marshaler.
func (e Expense) MarshalJSON() ([]byte, error) {
	items := make([]lineItemJSON, len(e.Items))
	for i, it := range e.Items {
		items[i] = lineItemJSON{
			Name:     it.Name,
			Amount:   json.Number(it.Amount.String()),
			Consumer: string(it.Consumer),
		}
	}
	return json.Marshal(expenseJSON{
		ID:     e.ID,
		Payer:  string(e.Payer),
		Items:  items,
		Status: string(e.Status),
		Date:   e.Date.UTC().Format(time.RFC3339Nano),
	})
}

// UnmarshalJSON implements json.Unmarshaler. A record that does not
// match the itemized shape (including records from the retired flat
// amount+consumers schema) is rejected so the loader can fall back.
func (e *Expense) UnmarshalJSON(data []byte) error {
	var w expenseJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	if w.Payer == "" {
		return fmt.Errorf("expense %d: missing payer", w.ID)
	}
	if len(w.Items) == 0 {
		return fmt.Errorf("expense %d: missing items", w.ID)
	}

	status := ExpenseStatus(w.Status)
	if status != StatusPending && status != StatusSettled {
		return fmt.Errorf("expense %d: invalid status %q", w.ID, w.Status)
	}

	date, err := time.Parse(time.RFC3339Nano, w.Date)
	if err != nil {
		return fmt.Errorf("expense %d: parsing date %q: %w", w.ID, w.Date, err)
	}

	items := make([]LineItem, len(w.Items))
	for i, it := range w.Items {
		amount, err := decimal.NewFromString(it.Amount.String())
		if err != nil {
			return fmt.Errorf("expense %d: parsing amount %q: %w", w.ID, it.Amount, err)
		}
		if !amount.IsPositive() {
			return fmt.Errorf("expense %d: amount %s is not positive", w.ID, amount)
		}
		items[i] = LineItem{
			Name:     it.Name,
			Amount:   amount,
			Consumer: Member(it.Consumer),
		}
	}

	e.ID = w.ID
	e.Payer = Member(w.Payer)
	e.Items = items
	e.Status = status
	e.Date = date
	return nil
}

package ledger

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/splittab-dev/splittab/internal/model"
)

// CreateExpense validates and appends a new expense. It fails with
// ErrNoPayer when payer is empty, ErrEmptyItems when items is empty,
// and ErrInvalidAmount unless every item amount is strictly positive.
// On success the expense gets a fresh ID, a pending status, and the
// current timestamp. Payer and consumers are not checked against the
// member registry; the balance engine handles unknown names.
func (s *Store) CreateExpense(payer model.Member, items []model.LineItem) (model.Expense, error) {
	return s.CreateExpenseAt(payer, items, time.Now())
}

// CreateExpenseAt is CreateExpense with an explicit date, used when
// importing historical expenses.
func (s *Store) CreateExpenseAt(payer model.Member, items []model.LineItem, date time.Time) (model.Expense, error) {
	if payer == "" {
		return model.Expense{}, ErrNoPayer
	}
	if len(items) == 0 {
		return model.Expense{}, ErrEmptyItems
	}
	for _, it := range items {
		if !it.Amount.IsPositive() {
			return model.Expense{}, fmt.Errorf("item %q: %w", it.Name, ErrInvalidAmount)
		}
	}

	ex := model.Expense{
		ID:     s.ids.Next(),
		Payer:  payer,
		Items:  append([]model.LineItem(nil), items...),
		Status: model.StatusPending,
		Date:   date,
	}

	s.expenses = append(s.expenses, ex)
	if err := s.persistExpenses(); err != nil {
		return ex, err
	}

	slog.Debug("expense created", "id", ex.ID, "payer", payer, "total", ex.Total())
	s.notify()
	return ex, nil
}

// ToggleStatus flips the expense matching id between pending and
// settled. Fails with ErrNotFound when no expense has that id.
func (s *Store) ToggleStatus(expenseID int64) (model.Expense, error) {
	for i := range s.expenses {
		if s.expenses[i].ID != expenseID {
			continue
		}

		if s.expenses[i].Status == model.StatusSettled {
			s.expenses[i].Status = model.StatusPending
		} else {
			s.expenses[i].Status = model.StatusSettled
		}

		if err := s.persistExpenses(); err != nil {
			return s.expenses[i], err
		}

		slog.Debug("expense toggled", "id", expenseID, "status", s.expenses[i].Status)
		s.notify()
		return s.expenses[i], nil
	}
	return model.Expense{}, fmt.Errorf("expense %d: %w", expenseID, ErrNotFound)
}

// ResetAll clears the expense sequence. Members are untouched.
// Confirmation of intent is the caller's job.
func (s *Store) ResetAll() error {
	s.expenses = nil
	if err := s.persistExpenses(); err != nil {
		return err
	}

	slog.Debug("expenses cleared")
	s.notify()
	return nil
}

// Expense returns the expense matching id, or ErrNotFound.
func (s *Store) Expense(expenseID int64) (model.Expense, error) {
	for _, ex := range s.expenses {
		if ex.ID == expenseID {
			return ex, nil
		}
	}
	return model.Expense{}, fmt.Errorf("expense %d: %w", expenseID, ErrNotFound)
}

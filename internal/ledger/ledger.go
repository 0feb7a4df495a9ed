// Package ledger holds the group ledger: the member registry and the
// expense sequence, mirrored to a storage gateway after every
// mutation.
package ledger

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/splittab-dev/splittab/internal/id"
	"github.com/splittab-dev/splittab/internal/model"
	"github.com/splittab-dev/splittab/internal/storage"
)

// Storage keys, one full JSON snapshot per top-level collection.
const (
	KeyMembers  = "pg_members"
	KeyExpenses = "pg_expenses"
)

// DefaultCurrency is the symbol used in share text when none is
// configured.
const DefaultCurrency = "₹"

// DefaultMembers is the seed member list used when the persisted
// member list is absent, empty, or unreadable.
var DefaultMembers = []model.Member{
	"Darshan",
	"Pratik",
	"Vaibhav",
	"Shreyas",
	"Ramji",
	"Rajvardhan",
	"Yash",
}

// Options configures a Store.
type Options struct {
	// SeedMembers replaces DefaultMembers as the fallback member list.
	SeedMembers []model.Member
	// Currency is the symbol used in share text. Defaults to
	// DefaultCurrency.
	Currency string
}

// Store owns the in-memory ledger state. All mutations go through its
// methods, which persist the touched collection and then notify
// subscribers. It is single-actor by design: one user action at a
// time, no internal locking.
type Store struct {
	gw       storage.Gateway
	members  []model.Member
	expenses []model.Expense
	ids      *id.Generator
	currency string
	subs     []func()
}

// New loads the ledger from gw. Corrupt or missing persisted state
// never fails construction: the member list falls back to the seed and
// the expense list to empty, with a warning logged.
func New(gw storage.Gateway, opts Options) *Store {
	seed := opts.SeedMembers
	if len(seed) == 0 {
		seed = DefaultMembers
	}
	currency := opts.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	s := &Store{
		gw:       gw,
		ids:      id.NewGenerator(),
		currency: currency,
	}
	s.members = loadMembers(gw, seed)
	s.expenses = loadExpenses(gw)
	for _, ex := range s.expenses {
		s.ids.Reserve(ex.ID)
	}
	return s
}

// Members returns a copy of the member list in insertion order.
func (s *Store) Members() []model.Member {
	out := make([]model.Member, len(s.members))
	copy(out, s.members)
	return out
}

// Expenses returns a copy of the expense list in creation order.
func (s *Store) Expenses() []model.Expense {
	out := make([]model.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Subscribe registers fn to run after every successful mutation. The
// UI layer uses this to re-render; the store itself knows nothing
// about rendering.
func (s *Store) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

func (s *Store) notify() {
	for _, fn := range s.subs {
		fn()
	}
}

func (s *Store) persistMembers() error {
	data, err := json.Marshal(s.members)
	if err != nil {
		return fmt.Errorf("marshaling members: %w", err)
	}
	if err := s.gw.Set(KeyMembers, string(data)); err != nil {
		return fmt.Errorf("saving members: %w", err)
	}
	return nil
}

func (s *Store) persistExpenses() error {
	expenses := s.expenses
	if expenses == nil {
		expenses = []model.Expense{} // persist as [], not null
	}
	data, err := json.Marshal(expenses)
	if err != nil {
		return fmt.Errorf("marshaling expenses: %w", err)
	}
	if err := s.gw.Set(KeyExpenses, string(data)); err != nil {
		return fmt.Errorf("saving expenses: %w", err)
	}
	return nil
}

func loadMembers(gw storage.Gateway, seed []model.Member) []model.Member {
	raw, ok, err := gw.Get(KeyMembers)
	if err != nil {
		slog.Warn("reading members failed, using seed list", "key", KeyMembers, "error", err)
	}
	if err != nil || !ok {
		return append([]model.Member(nil), seed...)
	}

	var members []model.Member
	if err := json.Unmarshal([]byte(raw), &members); err != nil {
		slog.Warn("persisted members are malformed, using seed list", "key", KeyMembers, "error", err)
		return append([]model.Member(nil), seed...)
	}
	if len(members) == 0 {
		return append([]model.Member(nil), seed...)
	}
	return members
}

func loadExpenses(gw storage.Gateway) []model.Expense {
	raw, ok, err := gw.Get(KeyExpenses)
	if err != nil {
		slog.Warn("reading expenses failed, starting empty", "key", KeyExpenses, "error", err)
	}
	if err != nil || !ok {
		return nil
	}

	var expenses []model.Expense
	if err := json.Unmarshal([]byte(raw), &expenses); err != nil {
		// Also hit by records in the retired flat schema; those are not
		// migrated, only flagged.
		slog.Warn("persisted expenses are malformed, starting empty", "key", KeyExpenses, "error", err)
		return nil
	}
	return expenses
}

package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splittab-dev/splittab/internal/model"
	"github.com/splittab-dev/splittab/internal/storage"
)

func TestShareText(t *testing.T) {
	s := New(storage.NewMemory(), Options{SeedMembers: []model.Member{"Darshan", "Pratik"}})
	ex, err := s.CreateExpense("Darshan", []model.LineItem{
		item("tea", "10", "Darshan"),
		item("samosa", "25.50", "Pratik"),
	})
	require.NoError(t, err)

	text, err := s.ShareText(ex.ID)
	require.NoError(t, err)

	want := "Paid by Darshan\n" +
		"- tea ₹10.00 (Darshan)\n" +
		"- samosa ₹25.50 (Pratik)\n" +
		"Total: ₹35.50\n" +
		"Status: pending"
	assert.Equal(t, want, text)
}

func TestShareText_SettledStatus(t *testing.T) {
	s := New(storage.NewMemory(), Options{SeedMembers: []model.Member{"A", "B"}})
	ex, err := s.CreateExpense("A", []model.LineItem{item("tea", "10", "B")})
	require.NoError(t, err)
	_, err = s.ToggleStatus(ex.ID)
	require.NoError(t, err)

	text, err := s.ShareText(ex.ID)
	require.NoError(t, err)
	assert.Contains(t, text, "Status: settled")
}

func TestShareText_CustomCurrency(t *testing.T) {
	s := New(storage.NewMemory(), Options{
		SeedMembers: []model.Member{"A", "B"},
		Currency:    "$",
	})
	ex, err := s.CreateExpense("A", []model.LineItem{item("coffee", "4", "B")})
	require.NoError(t, err)

	text, err := s.ShareText(ex.ID)
	require.NoError(t, err)
	assert.Contains(t, text, "- coffee $4.00 (B)")
	assert.Contains(t, text, "Total: $4.00")
}

func TestShareText_NotFound(t *testing.T) {
	s := New(storage.NewMemory(), Options{})

	_, err := s.ShareText(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

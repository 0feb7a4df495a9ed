package ledger

import "errors"

// Validation failures returned by store operations. Callers branch
// with errors.Is; none of these is fatal.
var (
	ErrEmptyName     = errors.New("member name is empty")
	ErrDuplicateName = errors.New("member already exists")
	ErrNoPayer       = errors.New("no payer selected")
	ErrEmptyItems    = errors.New("expense has no items")
	ErrInvalidAmount = errors.New("item amount must be positive")
	ErrNotFound      = errors.New("expense not found")
)

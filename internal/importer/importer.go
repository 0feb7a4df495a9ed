// Package importer bulk-loads expenses from CSV exports. Each parsed
// row is fed through the ledger's normal create path so every
// validation rule applies.
package importer

import (
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row is one expense line parsed from an import file.
type Row struct {
	Date     time.Time
	Payer    string
	Item     string
	Amount   decimal.Decimal
	Consumer string
}

// Parser converts an import file into Rows.
type Parser interface {
	Parse(r io.Reader) ([]Row, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&SimpleParser{})
	return r
}

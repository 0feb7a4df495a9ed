package id

import "time"

// Generator issues expense IDs derived from the wall clock in
// milliseconds. Expenses are created by discrete user actions, so the
// clock alone is nearly always unique; same-millisecond calls bump past
// the previous ID to keep uniqueness within a process.
type Generator struct {
	now  func() time.Time
	last int64
}

// NewGenerator creates a Generator backed by the system clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Reserve marks an existing ID so later Next calls stay above it.
// Called for every ID loaded from storage.
func (g *Generator) Reserve(id int64) {
	if id > g.last {
		g.last = id
	}
}

// Next returns the next expense ID.
func (g *Generator) Next() int64 {
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return ms
}

// Package storage provides the key-value gateway the ledger persists
// through, with in-memory, file, and sqlite backends.
package storage

// Gateway is a flat key-value store holding full JSON snapshots of
// top-level collections. Every Set overwrites the previous value for
// the key; there are no partial writes.
type Gateway interface {
	// Get returns the stored value for key, with ok=false when the key
	// has never been set.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}

package storage

// Memory is an in-process Gateway. Useful in tests and as a throwaway
// store when no data dir is configured.
type Memory struct {
	values map[string]string
}

// NewMemory creates an empty in-memory gateway.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get implements Gateway.
func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements Gateway.
func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	return nil
}

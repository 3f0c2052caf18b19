package store

import (
	"errors"
	"sync"
)

// ErrInjected is returned by a Memory store whose failure switch is on.
var ErrInjected = errors.New("injected store failure")

// Memory is a map-backed store. It is used by tests and --ephemeral runs.
type Memory struct {
	mu   sync.Mutex
	data map[string]string
	fail bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Load returns the value stored under key.
func (m *Memory) Load(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return "", false, ErrInjected
	}
	v, ok := m.data[key]
	return v, ok, nil
}

// Save stores value under key.
func (m *Memory) Save(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return ErrInjected
	}
	m.data[key] = value
	return nil
}

// Clear removes every key.
func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return ErrInjected
	}
	clear(m.data)
	return nil
}

// Len returns the number of stored keys.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

// FailWrites makes every subsequent call return ErrInjected until reset
// with false.
func (m *Memory) FailWrites(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = fail
}

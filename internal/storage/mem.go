package storage

import (
	"fmt"
	"sync"
)

// MemStore is an in-memory Adapter with the same quota semantics as
// FileStore. Tests use it directly and through its fault-injection
// knobs; it is also handy as the backend for ephemeral runs.
type MemStore struct {
	mu       sync.Mutex
	quota    int
	data     map[string]string
	disabled bool
	writeErr error
	writes   int
}

// NewMemStore creates an in-memory store with the given byte quota.
func NewMemStore(quota int) *MemStore {
	return &MemStore{quota: quota, data: map[string]string{}}
}

// Disable makes Probe report the store as unusable.
func (m *MemStore) Disable() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disabled = true
}

// FailWrites makes every subsequent Write fail with err. Pass nil to
// clear the fault.
func (m *MemStore) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// WriteAttempts reports how many writes have been attempted, including
// rejected ones.
func (m *MemStore) WriteAttempts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Probe reports whether the store is enabled.
func (m *MemStore) Probe() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.disabled
}

// Read returns the value for key.
func (m *MemStore) Read(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disabled {
		return "", false, fmt.Errorf("read %q: %w", key, ErrUnavailable)
	}
	v, ok := m.data[key]
	return v, ok, nil
}

// Write stores value under key, enforcing the quota across all keys.
func (m *MemStore) Write(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++

	if m.disabled {
		return fmt.Errorf("write %q: %w", key, ErrUnavailable)
	}
	if m.writeErr != nil {
		return fmt.Errorf("write %q: %w", key, m.writeErr)
	}

	used := 0
	for k, v := range m.data {
		if k == key {
			continue
		}
		used += len(v)
	}
	if used+len(value) > m.quota {
		return fmt.Errorf("write %q (%d bytes, %d free): %w",
			key, len(value), m.quota-used, ErrQuotaExceeded)
	}

	m.data[key] = value
	return nil
}

// Remove deletes key.
func (m *MemStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disabled {
		return fmt.Errorf("remove %q: %w", key, ErrUnavailable)
	}
	delete(m.data, key)
	return nil
}

package prefs

import "sync"

// Storage is a per-browser key-value store. The server package implements
// it as a bridge to the client's localStorage; tests use MemoryStorage.
//
// Implementations may fail (storage disabled, session gone); the Store
// treats every failure as "no saved preference".
type Storage interface {
	// Get returns the stored value for key, or empty string when unset.
	Get(key string) (string, error)

	// Set overwrites the stored value for key.
	Set(key, value string) error
}

// MemoryStorage is an in-process Storage, used in tests and as the
// server-side fallback when a session has no client storage yet.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

// Get implements Storage.
func (m *MemoryStorage) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

// Set implements Storage.
func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

package server

import "sync"

// clientStorage bridges a session's prefs.Storage to the browser's
// localStorage. Reads are served from the snapshot the client sent in its
// hello frame; writes update the snapshot and are pushed to the client as
// storage.set frames (fire and forget: if the client's storage is disabled
// the preference simply doesn't survive a reload).
type clientStorage struct {
	mu     sync.RWMutex
	values map[string]string

	// push sends a storage.set frame to the client.
	push func(key, value string)

	// onSet runs after every successful write (metrics, notifications).
	onSet func(key, value string)
}

func newClientStorage(seed map[string]string) *clientStorage {
	values := make(map[string]string, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &clientStorage{values: values}
}

// Get implements prefs.Storage.
func (c *clientStorage) Get(key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values[key], nil
}

// Set implements prefs.Storage.
func (c *clientStorage) Set(key, value string) error {
	c.mu.Lock()
	c.values[key] = value
	c.mu.Unlock()

	if c.push != nil {
		c.push(key, value)
	}
	if c.onSet != nil {
		c.onSet(key, value)
	}
	return nil
}

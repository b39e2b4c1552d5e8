package reactive

import (
	"reflect"
	"sync"
)

// Signal is a reactive value container. Subscribers registered with
// Subscribe are notified whenever the value changes.
type Signal[T any] struct {
	mu    sync.RWMutex
	value T

	// equal is the equality function used to decide if the value changed.
	// If nil, uses default equality checking.
	equal func(T, T) bool

	subMu   sync.Mutex
	subs    map[uint64]func(T)
	nextSub uint64
}

// NewSignal creates a new signal with the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		value: initial,
		subs:  make(map[uint64]func(T)),
	}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies subscribers if it changed.
func (s *Signal[T]) Set(value T) {
	s.mu.Lock()
	changed := !s.equals(s.value, value)
	if changed {
		s.value = value
	}
	s.mu.Unlock()

	if changed {
		s.notify(value)
	}
}

// Update atomically reads and updates the value.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	oldValue := s.value
	newValue := fn(oldValue)
	changed := !s.equals(oldValue, newValue)
	if changed {
		s.value = newValue
	}
	s.mu.Unlock()

	if changed {
		s.notify(newValue)
	}
}

// Subscribe registers fn to run on every value change. It returns a
// Cleanup that removes the subscription.
func (s *Signal[T]) Subscribe(fn func(T)) Cleanup {
	s.subMu.Lock()
	s.nextSub++
	id := s.nextSub
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// WithEquals returns the signal configured with a custom equality function.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// notify runs subscribers outside the value lock, copy-before-notify.
func (s *Signal[T]) notify(value T) {
	s.subMu.Lock()
	subs := make([]func(T), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(value)
	}
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals uses == for common comparable types and falls back to
// reflect.DeepEqual for everything else.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	case int:
		return av == any(b).(int)
	case int64:
		return av == any(b).(int64)
	case float64:
		return av == any(b).(float64)
	default:
		return reflect.DeepEqual(a, b)
	}
}

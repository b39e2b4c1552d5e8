package reactive

import (
	"sync"
	"sync/atomic"
)

// Cleanup undoes a side effect: cancels a timer, removes a subscription.
// Cleanups must be safe to call more than once.
type Cleanup func()

// Scope owns cleanups for a component instance. Disposing a scope runs all
// registered cleanups in reverse order, which mirrors component unmount.
type Scope struct {
	mu       sync.Mutex
	cleanups []Cleanup
	disposed atomic.Bool
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// OnCleanup registers fn to run when the scope is disposed.
// If the scope is already disposed, fn runs immediately.
func (s *Scope) OnCleanup(fn Cleanup) {
	if fn == nil {
		return
	}
	if s.disposed.Load() {
		fn()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanups = append(s.cleanups, fn)
}

// IsDisposed returns true once Dispose has been called.
func (s *Scope) IsDisposed() bool {
	return s.disposed.Load()
}

// Dispose runs all cleanups in reverse order. Subsequent calls are no-ops.
func (s *Scope) Dispose() {
	if s.disposed.Swap(true) {
		return
	}

	s.mu.Lock()
	cleanups := s.cleanups
	s.cleanups = nil
	s.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

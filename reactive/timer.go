package reactive

import (
	"sync/atomic"
	"time"
)

// Timeout creates a one-shot timer that executes fn after duration d.
// It returns a Cleanup that cancels the timer if called before it fires.
// The returned Cleanup guarantees fn will not run after cancellation even
// if the underlying timer has already expired.
//
//	cancel := reactive.Timeout(5*time.Second, func() {
//	    visible.Set(false)
//	})
//	defer cancel()
func Timeout(d time.Duration, fn func()) Cleanup {
	// Atomic guard prevents double-fire after cancel.
	var fired atomic.Bool
	timer := time.AfterFunc(d, func() {
		if fired.CompareAndSwap(false, true) {
			fn()
		}
	})

	return func() {
		fired.Store(true)
		timer.Stop()
	}
}

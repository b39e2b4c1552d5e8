package reactive

import (
	"testing"
	"time"
)

func TestScopeDisposeRunsCleanupsInReverseOrder(t *testing.T) {
	scope := NewScope()

	var order []int
	scope.OnCleanup(func() { order = append(order, 1) })
	scope.OnCleanup(func() { order = append(order, 2) })
	scope.OnCleanup(func() { order = append(order, 3) })

	scope.Dispose()

	if len(order) != 3 || order[0] != 3 || order[1] != 2 || order[2] != 1 {
		t.Errorf("expected reverse order [3 2 1], got %v", order)
	}
}

func TestScopeDisposeIsIdempotent(t *testing.T) {
	scope := NewScope()

	calls := 0
	scope.OnCleanup(func() { calls++ })

	scope.Dispose()
	scope.Dispose()

	if calls != 1 {
		t.Errorf("cleanup should run once, got %d", calls)
	}
	if !scope.IsDisposed() {
		t.Error("scope should report disposed")
	}
}

func TestScopeCleanupAfterDisposeRunsImmediately(t *testing.T) {
	scope := NewScope()
	scope.Dispose()

	ran := false
	scope.OnCleanup(func() { ran = true })

	if !ran {
		t.Error("cleanup registered after dispose should run immediately")
	}
}

func TestTimeoutFires(t *testing.T) {
	done := make(chan struct{})
	Timeout(10*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestTimeoutCancel(t *testing.T) {
	fired := make(chan struct{}, 1)
	cancel := Timeout(20*time.Millisecond, func() { fired <- struct{}{} })
	cancel()

	select {
	case <-fired:
		t.Fatal("cancelled timer fired")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTimeoutCancelAfterFireIsSafe(t *testing.T) {
	done := make(chan struct{})
	cancel := Timeout(5*time.Millisecond, func() { close(done) })

	<-done
	cancel() // must not panic or block
}

func TestScopeCancelsTimers(t *testing.T) {
	scope := NewScope()

	fired := make(chan struct{}, 1)
	scope.OnCleanup(Timeout(20*time.Millisecond, func() { fired <- struct{}{} }))
	scope.Dispose()

	select {
	case <-fired:
		t.Fatal("timer owned by disposed scope fired")
	case <-time.After(100 * time.Millisecond):
	}
}

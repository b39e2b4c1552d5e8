package reactive

import (
	"testing"
)

func TestSignalGetSet(t *testing.T) {
	s := NewSignal("light")

	if got := s.Get(); got != "light" {
		t.Errorf("expected initial value light, got %q", got)
	}

	s.Set("dark")
	if got := s.Get(); got != "dark" {
		t.Errorf("expected dark after Set, got %q", got)
	}
}

func TestSignalNotifiesSubscribers(t *testing.T) {
	s := NewSignal(0)

	var seen []int
	s.Subscribe(func(v int) { seen = append(seen, v) })

	s.Set(1)
	s.Set(2)

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("expected notifications [1 2], got %v", seen)
	}
}

func TestSignalSkipsEqualValues(t *testing.T) {
	s := NewSignal("same")

	calls := 0
	s.Subscribe(func(string) { calls++ })

	s.Set("same")
	if calls != 0 {
		t.Errorf("setting an equal value should not notify, got %d calls", calls)
	}
}

func TestSignalUnsubscribe(t *testing.T) {
	s := NewSignal(0)

	calls := 0
	unsub := s.Subscribe(func(int) { calls++ })

	s.Set(1)
	unsub()
	s.Set(2)

	if calls != 1 {
		t.Errorf("expected 1 call after unsubscribe, got %d", calls)
	}
}

func TestSignalUpdate(t *testing.T) {
	s := NewSignal(10)

	s.Update(func(v int) int { return v + 5 })

	if got := s.Get(); got != 15 {
		t.Errorf("expected 15, got %d", got)
	}
}

func TestSignalCustomEquals(t *testing.T) {
	// Treat values as equal when they match case-insensitively.
	s := NewSignal("Serif").WithEquals(func(a, b string) bool {
		return len(a) == len(b)
	})

	calls := 0
	s.Subscribe(func(string) { calls++ })

	s.Set("SERIF") // same length, considered equal
	if calls != 0 {
		t.Errorf("custom equality should suppress notification, got %d calls", calls)
	}

	s.Set("Mono")
	if calls != 1 {
		t.Errorf("expected 1 call for changed value, got %d", calls)
	}
}

func TestSignalDeepEqualFallback(t *testing.T) {
	s := NewSignal([]string{"a"})

	calls := 0
	s.Subscribe(func([]string) { calls++ })

	s.Set([]string{"a"}) // deep-equal, no notification
	if calls != 0 {
		t.Errorf("deep-equal slice should not notify, got %d calls", calls)
	}

	s.Set([]string{"b"})
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

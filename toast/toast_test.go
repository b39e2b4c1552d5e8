package toast

import (
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/verdana-ai/verdana-web/ui"
)

func TestVisibleToastRenders(t *testing.T) {
	tst := New(Options{Message: "Saved", Level: LevelSuccess, Show: true})
	defer tst.Dispose()

	html := ui.RenderString(tst.Render())
	if !strings.Contains(html, "Saved") {
		t.Errorf("message missing from render: %s", html)
	}
	if !strings.Contains(html, "toast-success") {
		t.Errorf("level class missing: %s", html)
	}
	if !strings.Contains(html, "✓") {
		t.Errorf("success icon missing: %s", html)
	}
}

func TestShowFalseNeverVisible(t *testing.T) {
	tst := New(Options{Message: "hidden", Show: false, Duration: 10 * time.Millisecond})
	defer tst.Dispose()

	if tst.Render() != nil {
		t.Error("toast constructed with Show=false must render nothing")
	}
	if got := tst.Phase(); got != PhaseGone {
		t.Errorf("expected Gone, got %s", got)
	}
}

func TestEmptyMessageNeverVisible(t *testing.T) {
	tst := New(Options{Show: true})
	defer tst.Dispose()

	if tst.Render() != nil {
		t.Error("toast without a message must render nothing")
	}
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	tst := New(Options{Message: "hi", Show: true})
	defer tst.Dispose()

	html := ui.RenderString(tst.Render())
	if !strings.Contains(html, "toast-info") {
		t.Errorf("expected info treatment by default: %s", html)
	}
}

func TestNoCloseButtonWithoutOnClose(t *testing.T) {
	tst := New(Options{Message: "hi", Show: true})
	defer tst.Dispose()

	if html := ui.RenderString(tst.Render()); strings.Contains(html, "toast-close") {
		t.Errorf("close affordance rendered without OnClose: %s", html)
	}

	withClose := New(Options{Message: "hi", Show: true, OnClose: func() {}})
	defer withClose.Dispose()

	if html := ui.RenderString(withClose.Render()); !strings.Contains(html, "toast-close") {
		t.Errorf("close affordance missing with OnClose set: %s", html)
	}
}

func TestAutoDismissLifecycle(t *testing.T) {
	start := time.Now()
	closed := make(chan time.Duration, 1)

	tst := New(Options{
		Message:  "Saved",
		Level:    LevelSuccess,
		Duration: 100 * time.Millisecond,
		Show:     true,
		OnClose:  func() { closed <- time.Since(start) },
	})
	defer tst.Dispose()

	if tst.Phase() != PhaseVisible {
		t.Fatal("toast should start visible")
	}

	var elapsed time.Duration
	select {
	case elapsed = <-closed:
	case <-time.After(3 * time.Second):
		t.Fatal("OnClose never fired")
	}

	// Go timers never fire early: duration + grace is a hard lower bound.
	if elapsed < 100*time.Millisecond+CloseDelay {
		t.Errorf("OnClose fired too early: %v", elapsed)
	}
	if tst.Phase() != PhaseGone {
		t.Errorf("expected Gone after OnClose, got %s", tst.Phase())
	}
	if tst.Render() != nil {
		t.Error("gone toast must render nothing")
	}
}

func TestHidesBeforeOnCloseFires(t *testing.T) {
	tst := New(Options{Message: "m", Duration: 50 * time.Millisecond, Show: true})
	defer tst.Dispose()

	deadline := time.Now().Add(2 * time.Second)
	for tst.Phase() == PhaseVisible {
		if time.Now().After(deadline) {
			t.Fatal("toast never hid")
		}
		time.Sleep(5 * time.Millisecond)
	}

	// Hiding renders nothing even before the grace delay elapses.
	if tst.Render() != nil {
		t.Error("hiding toast must render nothing")
	}
}

func TestZeroDurationNeverAutoDismisses(t *testing.T) {
	var closes atomic.Int32
	tst := New(Options{
		Message: "sticky",
		Show:    true,
		OnClose: func() { closes.Add(1) },
	})
	defer tst.Dispose()

	time.Sleep(CloseDelay + 150*time.Millisecond)

	if tst.Phase() != PhaseVisible {
		t.Errorf("zero-duration toast auto-transitioned to %s", tst.Phase())
	}
	if closes.Load() != 0 {
		t.Error("OnClose fired without dismissal")
	}

	// It still transitions on explicit close.
	tst.Close()
	if tst.Phase() != PhaseHiding {
		t.Errorf("expected Hiding after Close, got %s", tst.Phase())
	}
}

func TestExplicitCloseCancelsTimer(t *testing.T) {
	var closes atomic.Int32
	tst := New(Options{
		Message:  "m",
		Duration: 80 * time.Millisecond,
		Show:     true,
		OnClose:  func() { closes.Add(1) },
	})
	defer tst.Dispose()

	tst.Close()
	tst.Close() // second close is a no-op

	// Wait past both the original duration and the grace delay.
	time.Sleep(80*time.Millisecond + CloseDelay + 200*time.Millisecond)

	if got := closes.Load(); got != 1 {
		t.Errorf("OnClose should fire exactly once, got %d", got)
	}
}

func TestUpdateCancelsPendingTimer(t *testing.T) {
	tst := New(Options{Message: "m", Duration: 60 * time.Millisecond, Show: true})
	defer tst.Dispose()

	// Disabling the countdown before it fires must leave the toast visible.
	tst.Update(Options{Message: "m", Duration: 0, Show: true})

	time.Sleep(200 * time.Millisecond)
	if tst.Phase() != PhaseVisible {
		t.Errorf("cancelled countdown still fired, phase %s", tst.Phase())
	}
}

func TestUpdateReplacesOnClose(t *testing.T) {
	var oldCalls, newCalls atomic.Int32
	tst := New(Options{
		Message: "m",
		Show:    true,
		OnClose: func() { oldCalls.Add(1) },
	})
	defer tst.Dispose()

	tst.Update(Options{
		Message: "m",
		Show:    true,
		OnClose: func() { newCalls.Add(1) },
	})

	tst.Close()
	time.Sleep(CloseDelay + 200*time.Millisecond)

	if oldCalls.Load() != 0 {
		t.Error("stale OnClose invoked after Update")
	}
	if newCalls.Load() != 1 {
		t.Errorf("updated OnClose should fire once, got %d", newCalls.Load())
	}
}

func TestUpdateDoesNotResurrect(t *testing.T) {
	tst := New(Options{Message: "m", Show: false})
	defer tst.Dispose()

	tst.Update(Options{Message: "m", Show: true, Duration: 10 * time.Millisecond})

	if tst.Render() != nil {
		t.Error("Update must not make a never-visible toast render")
	}
}

func TestDisposeCancelsEverything(t *testing.T) {
	var closes atomic.Int32
	tst := New(Options{
		Message:  "m",
		Duration: 30 * time.Millisecond,
		Show:     true,
		OnClose:  func() { closes.Add(1) },
	})

	tst.Dispose()
	time.Sleep(30*time.Millisecond + CloseDelay + 150*time.Millisecond)

	if closes.Load() != 0 {
		t.Error("disposed toast invoked OnClose")
	}
	if tst.Render() != nil {
		t.Error("disposed toast must render nothing")
	}
}

func TestDisposeDuringGraceSuppressesOnClose(t *testing.T) {
	var closes atomic.Int32
	tst := New(Options{
		Message: "m",
		Show:    true,
		OnClose: func() { closes.Add(1) },
	})

	tst.Close()
	tst.Dispose() // unmount before the grace delay elapses

	time.Sleep(CloseDelay + 150*time.Millisecond)
	if closes.Load() != 0 {
		t.Error("OnClose fired against a disposed instance")
	}
}

func TestPhaseString(t *testing.T) {
	cases := []struct {
		phase Phase
		want  string
	}{
		{PhaseVisible, "Visible"},
		{PhaseHiding, "Hiding"},
		{PhaseGone, "Gone"},
		{Phase(99), "Unknown"},
	}
	for _, tc := range cases {
		if got := tc.phase.String(); got != tc.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tc.phase, got, tc.want)
		}
	}
}

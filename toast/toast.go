package toast

import (
	"sync"
	"time"

	"github.com/verdana-ai/verdana-web/reactive"
	"github.com/verdana-ai/verdana-web/ui"
)

// Level represents the toast notification severity.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// icon returns the glyph rendered next to the message.
func (l Level) icon() string {
	switch l {
	case LevelSuccess:
		return "✓"
	case LevelError:
		return "✕"
	default:
		return "ℹ"
	}
}

// CloseDelay is the grace period between the toast hiding and the host
// being notified via OnClose. It gives the exit animation time to finish.
const CloseDelay = 300 * time.Millisecond

// Phase is the toast lifecycle state.
type Phase uint8

const (
	// PhaseVisible renders the toast and may carry an auto-dismiss timer.
	PhaseVisible Phase = iota

	// PhaseHiding renders nothing; the CloseDelay grace timer is pending.
	PhaseHiding

	// PhaseGone is terminal. The host is free to discard the instance.
	PhaseGone
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseVisible:
		return "Visible"
	case PhaseHiding:
		return "Hiding"
	case PhaseGone:
		return "Gone"
	default:
		return "Unknown"
	}
}

// Options configures a Toast.
type Options struct {
	// Message is the text shown to the user. Required; a toast without a
	// message never becomes visible.
	Message string

	// Level selects the icon and color treatment.
	Level Level

	// Duration is how long the toast stays visible before auto-dismissing.
	// Zero or negative disables the auto-dismiss timer entirely.
	Duration time.Duration

	// Show is the initial visibility.
	Show bool

	// OnClose is invoked once, CloseDelay after the toast hides. When nil,
	// no close affordance is rendered and no notification happens; the
	// timer-driven hiding still occurs.
	OnClose func()
}

// Toast is a transient message surface with an explicit state machine:
// Visible -> Hiding -> Gone. At most one countdown is active per instance;
// updating options or disposing the toast cancels any pending timer before
// a new one is scheduled.
type Toast struct {
	mu    sync.Mutex
	opts  Options
	phase Phase

	cancelDismiss reactive.Cleanup
	cancelGrace   reactive.Cleanup
}

// New creates a toast. With Show=false or an empty message it starts Gone,
// never entering Visible.
func New(opts Options) *Toast {
	t := &Toast{
		opts:  opts,
		phase: PhaseGone,
	}

	if opts.Show && opts.Message != "" {
		t.phase = PhaseVisible
		t.mu.Lock()
		t.armDismissLocked()
		t.mu.Unlock()
	}

	return t
}

// Phase returns the current lifecycle state.
func (t *Toast) Phase() Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase
}

// Update replaces the options of a mounted toast. Any pending auto-dismiss
// timer is cancelled and a fresh one scheduled consistent with the new
// options, so rapid option changes can never leak or duplicate timers.
// Visibility is fixed at construction; Update does not resurrect a toast.
func (t *Toast) Update(opts Options) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.opts = opts

	if t.cancelDismiss != nil {
		t.cancelDismiss()
		t.cancelDismiss = nil
	}
	if t.phase == PhaseVisible {
		t.armDismissLocked()
	}
}

// Close hides the toast immediately, cancelling the pending auto-dismiss
// timer. Calling Close on a toast that is not visible is a no-op, so OnClose
// can never fire twice.
func (t *Toast) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hideLocked()
}

// Dispose cancels all outstanding timers. After Dispose the toast renders
// nothing and no callbacks fire; the host calls it on unmount.
func (t *Toast) Dispose() {
	t.mu.Lock()
	t.cancelTimersLocked()
	t.phase = PhaseGone
	t.mu.Unlock()
}

// Render returns the toast's node tree, or nil from the moment it hides.
func (t *Toast) Render() *ui.Node {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase != PhaseVisible {
		return nil
	}

	level := t.opts.Level
	if level == "" {
		level = LevelInfo
	}

	return ui.Div(
		ui.Class("toast toast-"+string(level)),
		ui.Role("status"),
		ui.AriaLive("polite"),
		ui.Span(ui.Class("toast-icon"), ui.AriaHidden(true), ui.Text(level.icon())),
		ui.Span(ui.Class("toast-message"), ui.Text(t.opts.Message)),
		ui.If(t.opts.OnClose != nil,
			ui.Button(
				ui.Class("toast-close"),
				ui.AriaLabel("Dismiss notification"),
				ui.OnClick(t.Close),
				ui.Text("×"),
			),
		),
	)
}

// armDismissLocked schedules the auto-dismiss countdown if the current
// options call for one. Caller holds t.mu and has cancelled any previous
// countdown.
func (t *Toast) armDismissLocked() {
	if t.opts.Duration <= 0 {
		return
	}

	t.cancelDismiss = reactive.Timeout(t.opts.Duration, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.hideLocked()
	})
}

// hideLocked transitions Visible -> Hiding and schedules the grace timer
// that moves the toast to Gone and notifies the host. Caller holds t.mu.
func (t *Toast) hideLocked() {
	if t.phase != PhaseVisible {
		return
	}

	if t.cancelDismiss != nil {
		t.cancelDismiss()
		t.cancelDismiss = nil
	}

	t.phase = PhaseHiding
	t.cancelGrace = reactive.Timeout(CloseDelay, t.finish)
}

// finish transitions Hiding -> Gone and invokes OnClose exactly once.
func (t *Toast) finish() {
	t.mu.Lock()
	if t.phase != PhaseHiding {
		t.mu.Unlock()
		return
	}
	t.phase = PhaseGone
	onClose := t.opts.OnClose
	t.mu.Unlock()

	if onClose != nil {
		onClose()
	}
}

// cancelTimersLocked cancels both timers. Caller holds t.mu.
func (t *Toast) cancelTimersLocked() {
	if t.cancelDismiss != nil {
		t.cancelDismiss()
		t.cancelDismiss = nil
	}
	if t.cancelGrace != nil {
		t.cancelGrace()
		t.cancelGrace = nil
	}
}

package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/verdana-ai/verdana-web/a11y"
	"github.com/verdana-ai/verdana-web/prefs"
	"github.com/verdana-ai/verdana-web/reactive"
	"github.com/verdana-ai/verdana-web/toast"
	"github.com/verdana-ai/verdana-web/ui"
)

// handshakeTimeout bounds how long a connection may take to send its
// hello frame.
const handshakeTimeout = 10 * time.Second

// prefSavedToastDuration is how long the "preference saved" toast stays up.
const prefSavedToastDuration = 4 * time.Second

// session is one live WebSocket connection. All component state mutations
// run on the session's dispatch loop, so signal writes are serialized; the
// loop re-renders the app region after every dispatched callback and pushes
// the new HTML when it changed.
type session struct {
	id      string
	conn    *websocket.Conn
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer

	theme *prefs.Theme
	store *prefs.Store
	dock  *a11y.Dock

	// scope owns the session's cleanups: the theme subscription and every
	// toast's timers. Disposed exactly once, on close.
	scope *reactive.Scope

	renderer *ui.Renderer
	handlers map[string]func()
	lastHTML string

	// notices are the session's live toasts, newest last.
	notices []*toast.Toast

	dispatchCh chan func()
	done       chan struct{}
	closed     atomic.Bool
	closeOnce  sync.Once

	writeMu sync.Mutex
}

func newSession(conn *websocket.Conn, logger *slog.Logger, metrics *Metrics, tracer trace.Tracer, queueSize int) *session {
	id := newSessionID()
	return &session{
		id:         id,
		conn:       conn,
		logger:     logger.With("session", id),
		metrics:    metrics,
		tracer:     tracer,
		scope:      reactive.NewScope(),
		renderer:   ui.NewRenderer(),
		dispatchCh: make(chan func(), queueSize),
		done:       make(chan struct{}),
	}
}

func newSessionID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "s-unknown"
	}
	return hex.EncodeToString(b[:])
}

// run services the connection until it closes. It blocks, so the caller
// runs it on the connection's goroutine.
func (s *session) run() {
	defer s.close()

	if err := s.handshake(); err != nil {
		s.logger.Debug("live handshake failed", "error", err)
		return
	}

	s.renderAndSend()

	go s.dispatchLoop()
	s.readLoop()
}

// handshake reads the hello frame and mounts the component tree over the
// client's persisted storage.
func (s *session) handshake() error {
	if err := s.conn.SetReadDeadline(time.Now().Add(handshakeTimeout)); err != nil {
		return err
	}

	var hello clientFrame
	if err := s.conn.ReadJSON(&hello); err != nil {
		return err
	}
	if err := s.conn.SetReadDeadline(time.Time{}); err != nil {
		return err
	}

	storage := newClientStorage(hello.Storage)
	storage.push = func(key, value string) {
		s.send(serverFrame{Type: frameStorageSet, Key: key, Value: value})
	}
	storage.onSet = s.prefSaved

	s.theme = prefs.NewTheme()
	s.store = prefs.NewStore(storage, s.theme, s.logger)

	// Subscribe before mounting so the mount-time Apply of a previously
	// saved font reaches the page, which was served with the default.
	s.scope.OnCleanup(s.theme.Subscribe(func(value string) {
		s.send(serverFrame{Type: frameStyleSet, Name: "--font-family", Value: value})
	}))

	s.dock = a11y.NewDock(s.store)
	return nil
}

// readLoop parses client frames and queues events onto the dispatch loop.
func (s *session) readLoop() {
	for {
		var frame clientFrame
		if err := s.conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("live read error", "error", err)
			}
			return
		}

		if frame.Type != frameEvent {
			continue
		}

		vid, event := frame.VID, frame.Event
		s.dispatch(func() { s.handleEvent(vid, event) })
	}
}

// dispatch queues fn to run on the session's event loop. Safe to call from
// any goroutine; this is how timers re-enter the session.
func (s *session) dispatch(fn func()) {
	if s.closed.Load() {
		return
	}
	select {
	case s.dispatchCh <- fn:
	case <-s.done:
	default:
		s.logger.Warn("dispatch queue full, discarding callback")
		s.metrics.liveEvents.WithLabelValues("dropped").Inc()
	}
}

func (s *session) dispatchLoop() {
	for {
		select {
		case fn := <-s.dispatchCh:
			fn()
			s.renderAndSend()
		case <-s.done:
			return
		}
	}
}

// handleEvent routes a client event to the handler registered during the
// last render. Events against stale VIDs (the region re-rendered since the
// client clicked) are dropped.
func (s *session) handleEvent(vid, event string) {
	_, span := s.tracer.Start(context.Background(), "live.event",
		trace.WithAttributes(
			attribute.String("live.vid", vid),
			attribute.String("live.event", event),
			attribute.String("live.session", s.id),
		),
	)
	defer span.End()

	fn, ok := s.handlers[vid+":"+event]
	if !ok {
		s.logger.Debug("stale live event", "vid", vid, "event", event)
		s.metrics.liveEvents.WithLabelValues("stale").Inc()
		return
	}

	fn()
	s.metrics.liveEvents.WithLabelValues("ok").Inc()
}

// prefSaved runs after every preference write: count it and surface a
// confirmation toast.
func (s *session) prefSaved(key, _ string) {
	if key != prefs.StorageKey {
		return
	}
	s.metrics.prefSaves.Inc()
	s.showToast("Font preference saved", toast.LevelSuccess, prefSavedToastDuration)
}

// showToast adds a toast to the app region. When the toast reports closed
// (after its grace delay) it is dropped from the region on the dispatch
// loop, which also triggers the re-render that clears it client-side.
func (s *session) showToast(message string, level toast.Level, duration time.Duration) {
	var t *toast.Toast
	t = toast.New(toast.Options{
		Message:  message,
		Level:    level,
		Duration: duration,
		Show:     true,
		OnClose: func() {
			s.dispatch(func() { s.removeNotice(t) })
		},
	})

	s.notices = append(s.notices, t)
	s.scope.OnCleanup(t.Dispose)
	s.metrics.toastsShown.WithLabelValues(string(level)).Inc()
}

func (s *session) removeNotice(t *toast.Toast) {
	for i, n := range s.notices {
		if n == t {
			s.notices = append(s.notices[:i], s.notices[i+1:]...)
			return
		}
	}
}

// renderAndSend renders the app region and pushes it when it changed.
func (s *session) renderAndSend() {
	children := make([]*ui.Node, 0, 1+len(s.notices))
	children = append(children, s.dock.Render())
	for _, n := range s.notices {
		children = append(children, n.Render())
	}

	s.renderer.Reset()
	html, err := s.renderer.RenderToString(ui.Fragment(children...))
	if err != nil {
		s.logger.Error("render failed", "error", err)
		return
	}
	s.handlers = s.renderer.Handlers()

	if html == s.lastHTML {
		return
	}
	s.lastHTML = html
	s.send(serverFrame{Type: frameRender, HTML: html})
}

func (s *session) send(frame serverFrame) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.conn.WriteJSON(frame); err != nil {
		s.logger.Debug("live write failed", "type", frame.Type, "error", err)
	}
}

// close tears the session down: stops the dispatch loop, cancels toast
// timers, closes the connection.
func (s *session) close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.done)
		s.scope.Dispose()
		_ = s.conn.Close()
		s.logger.Debug("live session closed")
	})
}

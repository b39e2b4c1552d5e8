package server

import (
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/verdana-ai/verdana-web/a11y"
	"github.com/verdana-ai/verdana-web/prefs"
	"github.com/verdana-ai/verdana-web/site"
	"github.com/verdana-ai/verdana-web/ui"
)

const defaultDispatchQueueSize = 64

// Options configures a Server.
type Options struct {
	// Logger receives server logs. Defaults to slog.Default().
	Logger *slog.Logger

	// DispatchQueueSize is the per-session event queue depth.
	DispatchQueueSize int
}

// Server serves the Verdana site: static pages over plain HTTP plus the
// /live WebSocket endpoint that drives the interactive dock and toasts.
type Server struct {
	logger    *slog.Logger
	metrics   *Metrics
	tracer    trace.Tracer
	upgrader  websocket.Upgrader
	queueSize int

	mu       sync.Mutex
	sessions map[*session]struct{}
}

// New creates a Server. The zero Options value gives sensible defaults.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	queueSize := opts.DispatchQueueSize
	if queueSize <= 0 {
		queueSize = defaultDispatchQueueSize
	}

	return &Server{
		logger:    logger,
		metrics:   NewMetrics(),
		tracer:    otel.Tracer("verdana-web/server"),
		queueSize: queueSize,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		sessions: make(map[*session]struct{}),
	}
}

// Handler returns the site's HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.handleHome)
	r.Get("/privacy", s.handlePrivacy)
	r.Get("/live", s.handleLive)
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", s.metrics.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(site.AssetsFS()))))

	return instrument(r, s.logger, s.metrics, s.tracer)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, "Verdana", site.Home())
}

func (s *Server) handlePrivacy(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, "Privacy Policy · Verdana", site.Privacy())
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

// writePage renders a full page. Pages are served with the default font;
// a previously saved preference is applied as soon as the live session
// mounts and reads the client's storage.
func (s *Server) writePage(w http.ResponseWriter, title string, content *ui.Node) {
	overlay := a11y.NewDock(prefs.NewStore(nil, nil, s.logger)).Render()
	page := site.Layout(title, prefs.DefaultFont().Value, content, overlay)

	html, err := ui.NewRenderer().RenderToString(page)
	if err != nil {
		s.logger.Error("page render failed", "title", title, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, "<!DOCTYPE html>\n"+html)
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	sess := newSession(conn, s.logger, s.metrics, s.tracer, s.queueSize)
	s.addSession(sess)
	s.metrics.liveSessions.Inc()

	defer func() {
		s.removeSession(sess)
		s.metrics.liveSessions.Dec()
	}()

	sess.run()
}

func (s *Server) addSession(sess *session) {
	s.mu.Lock()
	s.sessions[sess] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) removeSession(sess *session) {
	s.mu.Lock()
	delete(s.sessions, sess)
	s.mu.Unlock()
}

// Close tears down all live sessions. http.Server.Shutdown does not close
// hijacked connections, so graceful shutdown calls this after draining.
func (s *Server) Close() {
	s.mu.Lock()
	sessions := make([]*session, 0, len(s.sessions))
	for sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.close()
	}
}

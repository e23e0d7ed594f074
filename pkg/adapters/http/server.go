package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/finiteconsole/internal/presentation/graph"
	"github.com/aretw0/finiteconsole/pkg/domain"
	"github.com/aretw0/finiteconsole/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Stopper is implemented by programs whose loop can be stopped remotely.
type Stopper interface {
	Stop()
}

// Server exposes a read-only view of a program over HTTP.
type Server struct {
	Inspector ports.Inspector
	Streams   *StreamManager

	gatherer prometheus.Gatherer
	logger   *slog.Logger
	version  string
}

// Option configures a Server.
type Option func(*Server)

// WithGatherer serves the gatherer's metrics on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithVersion is reported by /healthz.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.version = strings.TrimSpace(v)
	}
}

// WithStreams shares an existing event feed, so its hooks can be wired
// into a program before the server is built.
func WithStreams(sm *StreamManager) Option {
	return func(s *Server) {
		s.Streams = sm
	}
}

// NewServer creates a server over insp.
func NewServer(insp ports.Inspector, opts ...Option) *Server {
	s := &Server{
		Inspector: insp,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Streams == nil {
		s.Streams = NewStreamManager(s.logger)
	}
	return s
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/menus", s.GetMenus)
	r.Get("/graph", s.GetGraph)
	r.Get("/diagnostics", s.GetDiagnostics)
	r.Get("/events", s.SubscribeEvents)
	if _, ok := s.Inspector.(Stopper); ok {
		r.Post("/stop", s.PostStop)
	}
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// MenusResponse is the body of GET /menus.
type MenusResponse struct {
	Init    string        `json:"init,omitempty"`
	Current string        `json:"current,omitempty"`
	Running bool          `json:"running"`
	Menus   []domain.View `json:"menus"`
}

// DiagnosticsResponse is the body of GET /diagnostics.
type DiagnosticsResponse struct {
	Startable bool               `json:"startable"`
	Problems  domain.Diagnostics `json:"problems"`
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	if s.version != "" {
		resp["version"] = s.version
	}
	s.writeJSON(w, resp)
}

// GetMenus handles GET /menus.
func (s *Server) GetMenus(w http.ResponseWriter, r *http.Request) {
	menus := s.Inspector.Menus()
	resp := MenusResponse{
		Init:    menuID(s.Inspector.InitMenu()),
		Current: menuID(s.Inspector.Current()),
		Running: s.Inspector.IsRunning(),
		Menus:   make([]domain.View, 0, len(menus)),
	}
	for _, m := range menus {
		resp.Menus = append(resp.Menus, domain.NewView(m))
	}
	s.writeJSON(w, resp)
}

// GetGraph handles GET /graph. The current menu is highlighted while a loop runs.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	var overlay *graph.Overlay
	if s.Inspector.IsRunning() {
		overlay = &graph.Overlay{CurrentMenu: menuID(s.Inspector.Current())}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.GenerateMermaid(s.Inspector.Menus(), menuID(s.Inspector.InitMenu()), overlay))
}

// GetDiagnostics handles GET /diagnostics.
func (s *Server) GetDiagnostics(w http.ResponseWriter, r *http.Request) {
	diags := s.Inspector.ResolveDependencies()
	if diags == nil {
		diags = domain.Diagnostics{}
	}
	s.writeJSON(w, DiagnosticsResponse{
		Startable: diags.Errors() == nil,
		Problems:  diags,
	})
}

// PostStop handles POST /stop.
func (s *Server) PostStop(w http.ResponseWriter, r *http.Request) {
	if !s.Inspector.IsRunning() {
		http.Error(w, "no loop is running", http.StatusConflict)
		return
	}
	s.Inspector.(Stopper).Stop()
	s.logger.Info("loop stop requested over http", "remote", r.RemoteAddr)
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

func menuID(m *domain.Menu) string {
	if m == nil {
		return ""
	}
	return m.ID
}

// pattern: Imperative Shell

// Package web exposes a read-only mirror of the carousel state over HTTP
// and a websocket event stream. It never writes carousel state; the TUI
// publishes snapshots after each change.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"feeddeck/internal/events"
	"feeddeck/internal/logging"
)

// Config holds web server configuration.
type Config struct {
	Bind string
	Port int
}

// Server serves the state API and the websocket event stream.
type Server struct {
	httpServer *http.Server
	logger     *logging.ScopedLogger
	addr       string
	listener   net.Listener
	broker     *eventBroker

	mu       sync.RWMutex
	snapshot events.Snapshot
}

// New creates a web server. Snapshots arrive via Publish.
func New(cfg Config, logProvider logging.LoggerProvider) *Server {
	logger := logProvider.For("web")
	addr := fmt.Sprintf("%s:%d", cfg.Bind, cfg.Port)

	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
		addr:   addr,
		broker: newEventBroker(),
	}

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("GET /api/events", s.handleEvents)

	return s
}

// Publish stores the latest snapshot and notifies event subscribers.
func (s *Server) Publish(snap events.Snapshot) {
	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
	s.broker.Notify()
}

// Snapshot returns the most recently published state.
func (s *Server) Snapshot() events.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Handler returns the HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Listen binds the listener. With port 0 an ephemeral port is chosen;
// Addr reports the resolved address.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return nil, err
	}
	s.listener = ln
	s.addr = ln.Addr().String()
	return ln, nil
}

// Addr returns the listener address after Listen.
func (s *Server) Addr() string {
	return s.addr
}

// Serve runs the HTTP server on the given listener.
func (s *Server) Serve(ln net.Listener) error {
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Snapshot()); err != nil {
		s.logger.Error("encode state", "error", err)
	}
}

// Package server exposes the table to spectators over WebSocket. Viewers
// connect to /ws and receive a summary of the table after every change; the
// connection is one-way and nothing a viewer sends reaches the game.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/tablefelt/dealerpad/internal/game"
)

// Message is the envelope pushed to spectators.
type Message struct {
	Type  string            `json:"type"`
	Table game.TableSummary `json:"table"`
}

// MessageTypeState announces the current table summary.
const MessageTypeState = "state"

// Server broadcasts table summaries to connected spectators.
type Server struct {
	addr       string
	upgrader   websocket.Upgrader
	logger     *log.Logger
	clock      quartz.Clock
	register   chan *connection
	unregister chan *connection

	mu          sync.RWMutex
	connections map[*connection]bool
	latest      []byte
}

// NewServer creates a spectator server listening on addr.
func NewServer(addr string, logger *log.Logger) *Server {
	return NewServerWithClock(addr, logger, quartz.NewReal())
}

// NewServerWithClock creates a server with an injected clock for tests.
func NewServerWithClock(addr string, logger *log.Logger, clock quartz.Clock) *Server {
	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			// Spectators are read-only, so any origin may watch.
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:      logger.WithPrefix("spectator"),
		clock:       clock,
		register:    make(chan *connection),
		unregister:  make(chan *connection),
		connections: make(map[*connection]bool),
	}
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	httpServer := &http.Server{Addr: s.addr, Handler: mux}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("Spectator server listening", "addr", s.addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		s.run(ctx)
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		return httpServer.Shutdown(context.Background())
	})
	return g.Wait()
}

// Handler returns the HTTP handler without starting a listener, for tests.
func (s *Server) Handler(ctx context.Context) http.Handler {
	go s.run(ctx)
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Publish pushes a new table summary to every connected spectator and keeps
// it for viewers who connect later.
func (s *Server) Publish(summary game.TableSummary) {
	data, err := json.Marshal(Message{Type: MessageTypeState, Table: summary})
	if err != nil {
		s.logger.Error("Failed to encode summary", "error", err)
		return
	}

	s.mu.Lock()
	s.latest = data
	conns := make([]*connection, 0, len(s.connections))
	for conn := range s.connections {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		conn.send(data)
	}
}

// SpectatorCount returns the number of connected viewers.
func (s *Server) SpectatorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

// run handles connection lifecycle until ctx is done.
func (s *Server) run(ctx context.Context) {
	for {
		select {
		case conn := <-s.register:
			s.mu.Lock()
			s.connections[conn] = true
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info("Spectator connected", "total", total)

		case conn := <-s.unregister:
			s.mu.Lock()
			if s.connections[conn] {
				delete(s.connections, conn)
				conn.close()
			}
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info("Spectator disconnected", "total", total)

		case <-ctx.Done():
			s.mu.Lock()
			for conn := range s.connections {
				conn.close()
			}
			s.connections = make(map[*connection]bool)
			s.mu.Unlock()
			return
		}
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	conn := newConnection(ws, s.logger, s.clock)

	s.mu.RLock()
	latest := s.latest
	s.mu.RUnlock()

	s.register <- conn
	conn.start()
	if latest != nil {
		conn.send(latest)
	}

	go func() {
		<-conn.done()
		s.unregister <- conn
	}()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, "OK")
}

// Package web serves the browser overlay and its frame feed. The overlay is
// a plain HTML page meant to be added as a browser source in OBS or opened
// in any browser on the machine.
package web

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"keyglow/config"
	"keyglow/render"
	"keyglow/storage"
)

//go:embed static/*
var staticFiles embed.FS

// frameInterval is the broadcast cadence for overlay frames.
const frameInterval = 33 * time.Millisecond

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // overlay is served on localhost only
	},
}

// Server represents the web server
type Server struct {
	db     *storage.DB
	store  *config.Store
	bridge *render.Bridge
	port   int
	hub    *Hub
	srv    *http.Server
}

// NewServer creates a new web server
func NewServer(db *storage.DB, store *config.Store, bridge *render.Bridge, port int) *Server {
	hub := NewHub()
	go hub.Run()

	return &Server{
		db:     db,
		store:  store,
		bridge: bridge,
		port:   port,
		hub:    hub,
	}
}

// Start serves until the context is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()

	// API endpoints
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/config", s.handleConfig)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/ws", s.handleWebSocket)

	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return fmt.Errorf("failed to load static files: %w", err)
	}
	mux.Handle("/", http.FileServer(http.FS(staticFS)))

	s.srv = &http.Server{
		Addr:    fmt.Sprintf("localhost:%d", s.port),
		Handler: mux,
	}

	go s.broadcastFrames(ctx)

	slog.Info("Starting web server", "url", fmt.Sprintf("http://localhost:%d", s.port))

	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	}
}

// broadcastFrames pushes overlay frames to connected clients at a fixed
// cadence. Frame assembly is snapshot reads only, so broadcasting with no
// clients connected costs next to nothing.
func (s *Server) broadcastFrames(ctx context.Context) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.hub.BroadcastMessage(Message{
				Type: MessageTypeFrame,
				Data: s.bridge.Snapshot(),
			})
		}
	}
}

// handleWebSocket handles WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade WebSocket connection", "error", err)
		return
	}

	client := &Client{
		hub:  s.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}

	client.hub.register <- client

	// Start client goroutines
	go client.writePump()
	go client.readPump()
}

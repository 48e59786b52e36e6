// Package hudfeed broadcasts arena snapshots to websocket subscribers.
package hudfeed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/ortho-arena/internal/sim"
)

// Envelope is the message sent to subscribers.
type Envelope struct {
	Type    string       `json:"type"`
	Payload sim.Snapshot `json:"payload"`
}

const writeTimeout = 2 * time.Second

type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *client) send(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(v)
}

// Hub tracks subscribers and fans out snapshots. Safe for concurrent use.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	last    *sim.Snapshot
	logger  *log.Logger

	upgrader websocket.Upgrader
}

// NewHub creates an empty hub.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}
}

// Clients returns the number of connected subscribers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) add(c *client) *sim.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	return h.last
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

// Publish sends a snapshot to every subscriber. Subscribers that fail to
// receive it are dropped.
func (h *Hub) Publish(snap sim.Snapshot) {
	h.mu.Lock()
	h.last = &snap
	targets := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.Unlock()

	msg := Envelope{Type: "snapshot", Payload: snap}
	for _, c := range targets {
		if err := c.send(msg); err != nil {
			h.logger.Debug("hud subscriber dropped", "err", err)
			h.remove(c)
			_ = c.conn.Close()
		}
	}
}

// Handler upgrades the request and keeps the subscriber until it
// disconnects. A late subscriber immediately receives the last snapshot.
func (h *Hub) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn("hud upgrade failed", "err", err)
			return
		}

		c := &client{conn: conn}
		last := h.add(c)
		defer func() {
			h.remove(c)
			_ = conn.Close()
		}()
		h.logger.Info("hud subscriber connected", "remote", r.RemoteAddr)

		if last != nil {
			if err := c.send(Envelope{Type: "snapshot", Payload: *last}); err != nil {
				return
			}
		}

		// Subscribers only listen; reading detects the close.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}

// Serve listens on addr until ctx is cancelled.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/hud", h.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	h.logger.Info("hud feed listening", "addr", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("hudfeed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("hudfeed: shutdown: %w", err)
		}
		return nil
	}
}

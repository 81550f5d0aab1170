package websockets

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The UI is served from a different origin than this service.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub is an in-process Publisher that broadcasts settlement events to every
// connected WebSocket client. Connections are registered by upgrading an HTTP
// request and dropped on the first failed write.
type Hub struct {
	mu    sync.Mutex
	next  int
	conns map[int]*websocket.Conn
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[int]*websocket.Conn)}
}

// ServeHTTP upgrades the request and keeps the connection until the client
// goes away. Clients only listen; inbound frames are drained and discarded.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	id := h.next
	h.next++
	h.conns[id] = conn
	h.mu.Unlock()

	slog.Info("websocket client connected", "connectionId", id)

	go func() {
		defer h.remove(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Publish sends a message to all connected clients. Stale connections are
// removed; individual write failures never fail the publish.
func (h *Hub) Publish(ctx context.Context, message Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	// The lock also serializes writers: gorilla connections allow at most
	// one concurrent WriteMessage.
	h.mu.Lock()
	var stale []int
	for id, conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			slog.Info("stale connection found, deleting", "connectionId", id)
			stale = append(stale, id)
		}
	}
	h.mu.Unlock()

	for _, id := range stale {
		h.remove(id)
	}
	return nil
}

func (h *Hub) remove(id int) {
	h.mu.Lock()
	conn, ok := h.conns[id]
	delete(h.conns, id)
	h.mu.Unlock()

	if ok {
		conn.Close()
	}
}

package socket

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Hub tracks connected notification clients, keyed by role and identity so
// a driver and a fleet company sharing an id never collide.
type Hub struct {
	clients map[string]*websocket.Conn
	mu      sync.RWMutex
	log     zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
		log:     log,
	}
}

func ClientKey(role, id string) string {
	return role + ":" + id
}

func (h *Hub) Register(key string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if prev, ok := h.clients[key]; ok {
		prev.Close()
	}
	h.clients[key] = conn
	h.log.Debug().Str("client", key).Msg("websocket client registered")
}

// Unregister removes the client only if it still owns the key. A stale
// connection evicted by a reconnect must not tear down its replacement.
func (h *Hub) Unregister(key string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if current, ok := h.clients[key]; ok && current == conn {
		delete(h.clients, key)
		h.log.Debug().Str("client", key).Msg("websocket client unregistered")
	}
}

// Send delivers a message to one client. An offline client is not an error.
func (h *Hub) Send(key string, message []byte) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conn, ok := h.clients[key]
	if !ok {
		return nil
	}
	return conn.WriteMessage(websocket.TextMessage, message)
}

package session

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans accepted song entries out to the websocket subscribers of each
// session. Subscribers are read-only; a dropped write unregisters the
// connection.
type Hub struct {
	mutex sync.RWMutex
	conns map[string]map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]map[*websocket.Conn]struct{})}
}

func (h *Hub) Register(sessionID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.conns[sessionID] == nil {
		h.conns[sessionID] = make(map[*websocket.Conn]struct{})
	}
	h.conns[sessionID][conn] = struct{}{}
}

func (h *Hub) Unregister(sessionID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if set, ok := h.conns[sessionID]; ok {
		if _, exists := set[conn]; exists {
			_ = conn.Close()
			delete(set, conn)
		}
		if len(set) == 0 {
			delete(h.conns, sessionID)
		}
	}
}

func (h *Hub) Broadcast(sessionID string, message interface{}) {
	h.mutex.RLock()
	set := h.conns[sessionID]
	targets := make([]*websocket.Conn, 0, len(set))
	for conn := range set {
		targets = append(targets, conn)
	}
	h.mutex.RUnlock()

	for _, conn := range targets {
		if err := conn.WriteJSON(message); err != nil {
			h.Unregister(sessionID, conn)
		}
	}
}

// CloseSession drops every subscriber of a session, used when the session
// transitions to CLOSED.
func (h *Hub) CloseSession(sessionID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.conns[sessionID] {
		_ = conn.Close()
	}
	delete(h.conns, sessionID)
}

func (h *Hub) SubscriberCount(sessionID string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.conns[sessionID])
}

package messaging

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks one live websocket connection per account for message
// push. Delivery is best effort; persistence happens before push.
type Hub struct {
	connections map[string]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(accountID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[accountID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[accountID] = conn
}

func (h *Hub) Unregister(accountID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[accountID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, accountID)
	}
}

func (h *Hub) SendToAccount(accountID string, message interface{}) bool {
	h.mutex.RLock()
	conn, exists := h.connections[accountID]
	h.mutex.RUnlock()

	if !exists || conn == nil {
		return false
	}

	if err := conn.WriteJSON(message); err != nil {
		h.Unregister(accountID)
		return false
	}

	return true
}

func (h *Hub) IsOnline(accountID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[accountID]
	return exists
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for accountID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, accountID)
	}
}

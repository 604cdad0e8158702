package api

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// connWithMutex wraps a WebSocket connection with its own mutex for thread-safe writes.
type connWithMutex struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// WSConnectionManager manages preview WebSocket connections for broadcasting.
type WSConnectionManager struct {
	mu          sync.RWMutex
	connections map[*websocket.Conn]*connWithMutex
	logger      zerolog.Logger
}

// NewWSConnectionManager creates a new WebSocket connection manager.
func NewWSConnectionManager(logger zerolog.Logger) *WSConnectionManager {
	return &WSConnectionManager{
		connections: make(map[*websocket.Conn]*connWithMutex),
		logger:      logger,
	}
}

// Add adds a connection to the manager.
func (m *WSConnectionManager) Add(conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[conn] = &connWithMutex{
		conn: conn,
	}
}

// Remove removes a connection from the manager and closes it.
func (m *WSConnectionManager) Remove(conn *websocket.Conn) {
	m.mu.Lock()
	_, exists := m.connections[conn]
	delete(m.connections, conn)
	m.mu.Unlock()

	if exists {
		_ = conn.Close()
	}
}

// Count returns the number of connected clients.
func (m *WSConnectionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// Broadcast sends a message to all connected clients.
func (m *WSConnectionManager) Broadcast(message any) {
	m.mu.RLock()
	// Copy so writes happen without holding the main lock
	conns := make([]*connWithMutex, 0, len(m.connections))
	for _, cwm := range m.connections {
		conns = append(conns, cwm)
	}
	m.mu.RUnlock()

	for _, cwm := range conns {
		cwm.mu.Lock()
		err := cwm.conn.WriteJSON(message)
		cwm.mu.Unlock()

		if err != nil {
			m.logger.Debug().Err(err).Str("remote", cwm.conn.RemoteAddr().String()).Msg("dropping preview client")
			m.Remove(cwm.conn)
		}
	}
}

// WriteJSON safely writes JSON to a specific connection using its mutex.
func (m *WSConnectionManager) WriteJSON(conn *websocket.Conn, message any) error {
	m.mu.RLock()
	cwm, exists := m.connections[conn]
	m.mu.RUnlock()

	if !exists {
		return conn.WriteJSON(message)
	}

	cwm.mu.Lock()
	defer cwm.mu.Unlock()
	return cwm.conn.WriteJSON(message)
}

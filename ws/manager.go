package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

// Manager tracks catalog feed subscribers. Writes are serialized through the
// manager's lock since gorilla connections allow one concurrent writer.
type Manager struct {
	mu   sync.Mutex
	subs map[*websocket.Conn]struct{}
}

func NewManager() *Manager {
	return &Manager{subs: make(map[*websocket.Conn]struct{})}
}

func (m *Manager) Add(conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs[conn] = struct{}{}
	log.Printf("catalog feed: subscriber connected (%d total)", len(m.subs))
}

func (m *Manager) Remove(conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.subs[conn]; ok {
		delete(m.subs, conn)
		log.Printf("catalog feed: subscriber disconnected (%d total)", len(m.subs))
	}
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subs)
}

// Broadcast sends v as JSON to every subscriber. Subscribers that fail the
// write are dropped and closed.
func (m *Manager) Broadcast(v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Printf("catalog feed: marshal event: %v", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for conn := range m.subs {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("catalog feed: dropping subscriber: %v", err)
			conn.Close()
			delete(m.subs, conn)
		}
	}
}

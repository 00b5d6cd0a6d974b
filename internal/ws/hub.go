package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans test-room events (participant joins, submissions, status changes)
// out to every socket watching a test.
type Hub struct {
	mu    sync.RWMutex
	tests map[uint]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		tests: make(map[uint]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(testID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.tests[testID] == nil {
		h.tests[testID] = make(map[*websocket.Conn]bool)
	}
	h.tests[testID][conn] = true
	log.Printf("ws: client connected to test %d (total: %d)", testID, len(h.tests[testID]))
}

func (h *Hub) RemoveConnection(testID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.tests[testID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.tests, testID)
		}
		log.Printf("ws: client disconnected from test %d", testID)
	}
}

func (h *Hub) BroadcastToTest(testID uint, message WSMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, ok := h.tests[testID]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}

package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/NutritionScanner/nutrivision-backend/models"
)

// DetectionEvent is pushed to every connected client each time an image
// classification completes.
type DetectionEvent struct {
	Kind       string                 `json:"kind"`
	Label      string                 `json:"label"`
	Confidence float64                `json:"confidence"`
	Record     models.NutritionRecord `json:"record"`
}

type WSClient struct {
	Conn *websocket.Conn
}

// DetectionHub fans detection events out to connected websocket
// clients. Broadcast is best-effort, a dead connection is dropped on
// its next read error.
type DetectionHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

func NewDetectionHub() *DetectionHub {
	return &DetectionHub{clients: make(map[*WSClient]struct{})}
}

func (h *DetectionHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *DetectionHub) Unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *DetectionHub) Broadcast(ev DetectionEvent) {
	msg, _ := json.Marshal(ev)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}

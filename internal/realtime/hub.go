package realtime

import (
	"encoding/json"
	"sync"
)

// Client represents one connected subscriber. The network conn itself is
// owned by the websocket handler; the hub only pushes bytes.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Hub fans envelopes out to the subscribers of a family. Used by the
// stub API to emit TaskMoved/notification events.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[Client]struct{} // keyed by family id
}

// NewHub builds an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[Client]struct{})}
}

// Register adds a client under a family ID.
func (h *Hub) Register(familyID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[familyID]; !ok {
		h.clients[familyID] = make(map[Client]struct{})
	}
	h.clients[familyID][client] = struct{}{}
}

// Unregister removes a client; the family entry is dropped once empty.
func (h *Hub) Unregister(familyID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.clients[familyID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.clients, familyID)
		}
	}
}

// Broadcast sends an event to every subscriber of a family. Failed writes
// are left for the owning handler to clean up.
func (h *Hub) Broadcast(familyID, event string, payload any) {
	env, err := NewEnvelope(event, payload)
	if err != nil {
		return
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[familyID] {
		_ = c.Send(raw)
	}
}

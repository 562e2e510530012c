package realtime

import (
	"strings"
	"sync"
)

// Client represents a single websocket client connection.
// The actual network conn is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Hub maintains the open connections of each identity and broadcasts events to them.
// Identities are keyed by lower-cased email.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[Client]struct{})}
}

func hubKey(email string) string {
	return strings.ToLower(email)
}

// Register adds a client under an identity.
func (h *Hub) Register(email string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	key := hubKey(email)
	if _, ok := h.clients[key]; !ok {
		h.clients[key] = make(map[Client]struct{})
	}
	h.clients[key][client] = struct{}{}
}

// Unregister removes a client; if the identity has no more clients, cleans up the map.
func (h *Hub) Unregister(email string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	key := hubKey(email)
	if clients, ok := h.clients[key]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.clients, key)
		}
	}
}

// Broadcast sends a message to all clients of an identity and returns how many accepted it.
// Failed clients are left for their handler to clean up.
func (h *Hub) Broadcast(email string, message []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	sent := 0
	for c := range h.clients[hubKey(email)] {
		if c.Send(message) {
			sent++
		}
	}
	return sent
}

// Connections returns the number of open clients of an identity.
func (h *Hub) Connections(email string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[hubKey(email)])
}

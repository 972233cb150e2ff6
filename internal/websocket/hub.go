package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub maintains the set of connected UI clients and pushes a state event
// to all of them after every committed store transition, so open pages
// re-fetch and re-render against the new snapshot.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Register requests
	register chan *Client

	// Unregister requests
	unregister chan *Client

	// Outbound messages for all clients
	broadcast chan []byte

	// Mutex for thread-safe access to clients map
	mu sync.RWMutex
}

// StateEvent is pushed to every client after a transition.
type StateEvent struct {
	Event   string `json:"event"`
	Version uint64 `json:"version"`
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
		clients:    make(map[*Client]bool),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("🖥️ UI client connected (%d active)", h.clientCount())

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			log.Printf("🔌 UI client disconnected (%d active)", h.clientCount())

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Buffer full or client dead, drop the message
				}
			}
			h.mu.RUnlock()
		}
	}
}

// NotifyState queues a state event for every connected client. Store
// subscribers call this after each transition.
func (h *Hub) NotifyState(version uint64) {
	msg, err := json.Marshal(StateEvent{Event: "state", Version: version})
	if err != nil {
		log.Printf("Error marshaling state event: %v", err)
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		// Hub loop not draining, drop rather than block dispatch
	}
}

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Package hub streams action dispatches to WebSocket clients such as
// stream overlays and input visualizers.
package hub

import (
	"context"
	"log/slog"
	"sync"
)

// Hub manages WebSocket clients and broadcasts messages.
type Hub struct {
	clients    map[*Client]bool
	register   chan registration
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan registration),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// registration is acked once the client is in the set, so messages queued
// right after Register are never dropped.
type registration struct {
	client *Client
	added  chan struct{}
}

// Register adds a new client to the hub and returns once it can receive
// broadcasts. It reports false when the hub has stopped.
func (h *Hub) Register(c *Client) bool {
	req := registration{client: c, added: make(chan struct{})}
	select {
	case h.register <- req:
	case <-h.done:
		close(c.send)
		return false
	}
	<-req.added
	return true
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends msg to every client subscribed to action. An empty action
// reaches every client.
func (h *Hub) Broadcast(msg []byte, action string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if action != "" && !client.Wants(action) {
			continue
		}
		select {
		case client.send <- msg:
		default:
			// send buffer full, drop the client
			h.logger.Warn("hub: client too slow, disconnecting", "remote", client.remote)
			go h.Unregister(client)
		}
	}
}

// Run serves register and unregister requests until ctx is done, then
// disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		h.mu.Lock()
		for client := range h.clients {
			delete(h.clients, client)
			close(client.send)
		}
		h.mu.Unlock()
	}()

	for {
		select {
		case req := <-h.register:
			client := req.client
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			close(req.added)
			h.logger.Info("hub: client connected", "remote", client.remote, "total", total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("hub: client disconnected", "remote", client.remote, "total", total)

		case <-ctx.Done():
			return
		}
	}
}

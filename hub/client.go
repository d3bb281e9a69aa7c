package hub

import (
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 5 * time.Second
	sendBuffer = 256
)

// Client represents a connected WebSocket client.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	remote string

	mu     sync.RWMutex
	filter []string
}

// NewClient creates a new Client attached to the hub.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		remote: conn.RemoteAddr().String(),
	}
}

// Wants reports whether the client subscribed to action.
func (c *Client) Wants(action string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.filter) == 0 {
		return true
	}
	_, found := slices.BinarySearch(c.filter, action)
	return found
}

func (c *Client) subscribe(actions []string) []string {
	filter := slices.Clone(actions)
	slices.Sort(filter)
	filter = slices.Compact(filter)
	c.mu.Lock()
	c.filter = filter
	c.mu.Unlock()
	return filter
}

// WritePump sends messages from the send channel to the WebSocket connection.
func (c *Client) WritePump() {
	defer func() {
		c.conn.Close()
	}()

	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
}

// ReadPump reads client commands until the connection closes.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var clientMsg ClientMessage
		if err := json.Unmarshal(message, &clientMsg); err != nil {
			c.hub.logger.Warn("hub: bad client message", "remote", c.remote, "err", err)
			continue
		}

		switch clientMsg.Type {
		case "subscribe":
			filter := c.subscribe(clientMsg.Actions)
			data, err := json.Marshal(NewSubscribedMessage(filter))
			if err != nil {
				continue
			}
			c.trySend(data)
			c.hub.logger.Debug("hub: client subscribed", "remote", c.remote, "actions", filter)
		default:
			c.hub.logger.Warn("hub: unknown client command", "remote", c.remote, "type", clientMsg.Type)
		}
	}
}

// trySend queues data unless the client is gone or its buffer is full.
func (c *Client) trySend(data []byte) {
	c.hub.mu.RLock()
	defer c.hub.mu.RUnlock()
	if !c.hub.clients[c] {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

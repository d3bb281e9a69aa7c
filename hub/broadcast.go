package hub

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/milk9111/bufferedinput/input"
)

const (
	fullSyncInterval = 5 * time.Second
	queueSize        = 256
)

type emitted struct {
	action, name string
}

// Broadcaster receives dispatches from the frame loop and forwards them to
// the hub. Publish and Emit never block; when the queue is full the item is
// dropped and counted.
type Broadcaster struct {
	hub     *Hub
	events  chan input.Event
	emits   chan emitted
	dropped atomic.Int64

	mu     sync.Mutex
	latest map[string]input.Event
	seq    int64
}

func NewBroadcaster(h *Hub) *Broadcaster {
	return &Broadcaster{
		hub:    h,
		events: make(chan input.Event, queueSize),
		emits:  make(chan emitted, queueSize),
		latest: make(map[string]input.Event),
	}
}

// Publish queues a dispatch. It has the shape of a registry observer.
func (b *Broadcaster) Publish(evt input.Event) {
	select {
	case b.events <- evt:
	default:
		b.dropped.Add(1)
	}
}

// Emit queues a script event. It has the shape of a script emit function.
func (b *Broadcaster) Emit(action, name string) {
	select {
	case b.emits <- emitted{action, name}:
	default:
		b.dropped.Add(1)
	}
}

// Dropped returns how many items were discarded because the queue was full.
func (b *Broadcaster) Dropped() int64 {
	return b.dropped.Load()
}

// Run forwards queued items until ctx is done. Every fullSyncInterval the
// latest state of every action is resent so late or lossy clients converge.
func (b *Broadcaster) Run(ctx context.Context) {
	ticker := time.NewTicker(fullSyncInterval)
	defer ticker.Stop()

	for {
		select {
		case evt := <-b.events:
			b.mu.Lock()
			b.latest[evt.Name] = evt
			b.seq++
			msg := NewEventMessage(b.seq, evt)
			b.mu.Unlock()
			b.send(msg, evt.Name)

		case e := <-b.emits:
			b.mu.Lock()
			b.seq++
			msg := NewEmitMessage(b.seq, e.action, e.name)
			b.mu.Unlock()
			b.send(msg, e.action)

		case <-ticker.C:
			if b.hub.Len() == 0 {
				continue
			}
			b.send(b.fullMessage(), "")

		case <-ctx.Done():
			return
		}
	}
}

// SendInitialState sends the current full state to a newly connected client.
func (b *Broadcaster) SendInitialState(c *Client) {
	data, err := json.Marshal(b.fullMessage())
	if err != nil {
		b.hub.logger.Error("hub: marshal initial state", "err", err)
		return
	}
	c.trySend(data)
}

func (b *Broadcaster) fullMessage() *Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	latest := make([]input.Event, 0, len(b.latest))
	for _, evt := range b.latest {
		latest = append(latest, evt)
	}
	slices.SortFunc(latest, func(x, y input.Event) int {
		return strings.Compare(x.Name, y.Name)
	})
	b.seq++
	return NewFullMessage(b.seq, latest)
}

func (b *Broadcaster) send(msg *Message, action string) {
	data, err := json.Marshal(msg)
	if err != nil {
		b.hub.logger.Error("hub: marshal message", "type", msg.Type, "err", err)
		return
	}
	b.hub.Broadcast(data, action)
}

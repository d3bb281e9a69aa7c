package hub

import (
	"time"

	"github.com/milk9111/bufferedinput/input"
)

// Message types sent to clients.
const (
	TypeEvent      = "event"
	TypeFull       = "full"
	TypeEmit       = "emit"
	TypeSubscribed = "subscribed"
)

// Message is a server to client frame.
type Message struct {
	Type      string        `json:"type"`
	Seq       int64         `json:"seq"`
	Timestamp int64         `json:"timestamp"`
	Event     *input.Event  `json:"event,omitempty"`
	Actions   []input.Event `json:"actions,omitempty"`
	Action    string        `json:"action,omitempty"`
	Name      string        `json:"name,omitempty"`
	Filter    []string      `json:"filter,omitempty"`
}

// NewEventMessage wraps one dispatch.
func NewEventMessage(seq int64, evt input.Event) *Message {
	return &Message{
		Type:      TypeEvent,
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Event:     &evt,
		Action:    evt.Name,
	}
}

// NewFullMessage carries the latest dispatch of every action seen so far.
func NewFullMessage(seq int64, latest []input.Event) *Message {
	return &Message{
		Type:      TypeFull,
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Actions:   latest,
	}
}

// NewEmitMessage carries a named event raised by an action script.
func NewEmitMessage(seq int64, action, name string) *Message {
	return &Message{
		Type:      TypeEmit,
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Action:    action,
		Name:      name,
	}
}

func NewSubscribedMessage(filter []string) *Message {
	return &Message{
		Type:      TypeSubscribed,
		Timestamp: time.Now().UnixMilli(),
		Filter:    filter,
	}
}

// ClientMessage is a client to server frame. The only command is
// "subscribe", which limits the client to the listed actions. An empty list
// subscribes to everything.
type ClientMessage struct {
	Type    string   `json:"type"`
	Actions []string `json:"actions,omitempty"`
}

// Package protocol defines the Pico Protocol wire format used to inject
// messages into a host agent conversation.
// This package has zero internal dependencies to stay at the bottom
// of the dependency graph.
package protocol

import "time"

// Message type constants for the Pico Protocol.
const (
	// TypeMessageSend is sent from client to server.
	TypeMessageSend = "message.send"
)

// Payload keys of a message.send envelope.
const (
	PayloadContent     = "content"
	PayloadCustomType  = "custom_type"
	PayloadDisplay     = "display"
	PayloadTriggerTurn = "trigger_turn"
)

// Message is the wire format for all Pico Protocol messages.
type Message struct {
	Type      string         `json:"type"`
	ID        string         `json:"id,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
	Timestamp int64          `json:"timestamp,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// NewMessage creates a Message with the given type, payload, and current timestamp.
func NewMessage(msgType string, payload map[string]any) Message {
	return Message{
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
		Payload:   payload,
	}
}

package bus

import "time"

// Message is an entry injected into the host agent's conversation.
type Message struct {
	ID          string    `json:"id"`
	CustomType  string    `json:"custom_type"`
	Content     string    `json:"content"`
	Display     bool      `json:"display"`
	TriggerTurn bool      `json:"trigger_turn"`
	CreatedAt   time.Time `json:"created_at"`
}

// SendOptions accompany a message handed to the host's intake.
type SendOptions struct {
	// TriggerTurn asks the host to start a processing turn for the message now.
	TriggerTurn bool
}

package bus

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mrexodia/devdocs-cli/pkg/logger"
)

const DefaultBufferSize = 100

var ErrBusClosed = errors.New("message bus closed")

type MessageBus struct {
	inbound chan Message
	closed  bool
	mu      sync.RWMutex
}

func NewMessageBus(buffer int) *MessageBus {
	if buffer <= 0 {
		buffer = DefaultBufferSize
	}
	return &MessageBus{
		inbound: make(chan Message, buffer),
	}
}

// SendMessage hands msg to the conversation intake. It returns once the message is
// queued; it never waits for the turn the message triggers.
func (mb *MessageBus) SendMessage(ctx context.Context, msg Message, opts SendOptions) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	msg.TriggerTurn = opts.TriggerTurn

	mb.mu.RLock()
	defer mb.mu.RUnlock()
	if mb.closed {
		return ErrBusClosed
	}

	select {
	case mb.inbound <- msg:
	case <-ctx.Done():
		return ctx.Err()
	}

	logger.DebugCF("bus", "Message queued", map[string]any{
		"id":           msg.ID,
		"custom_type":  msg.CustomType,
		"trigger_turn": msg.TriggerTurn,
	})
	return nil
}

// Consume returns the next message and whether the read succeeded.
// The bool is false when the context is cancelled or the bus is closed.
func (mb *MessageBus) Consume(ctx context.Context) (Message, bool) {
	select {
	case msg, ok := <-mb.inbound:
		return msg, ok
	case <-ctx.Done():
		return Message{}, false
	}
}

func (mb *MessageBus) Close() {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if mb.closed {
		return
	}
	mb.closed = true
	close(mb.inbound)
}

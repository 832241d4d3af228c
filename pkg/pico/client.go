package pico

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mrexodia/devdocs-cli/pkg/bus"
	"github.com/mrexodia/devdocs-cli/pkg/pico/protocol"
)

// DefaultWriteTimeout bounds a single envelope write.
const DefaultWriteTimeout = 10 * time.Second

type Client struct {
	token string
}

// NewClient creates a new Pico WebSocket client.
// If token is non-empty it is sent as a Bearer token in the upgrade request.
func NewClient(token string) *Client {
	return &Client{token: token}
}

// BuildWSURL constructs the Pico WebSocket URL for a host address and session ID.
// addr may already carry a ws:// or wss:// scheme.
func BuildWSURL(addr, sessionID string) string {
	base := addr
	if !strings.HasPrefix(base, "ws://") && !strings.HasPrefix(base, "wss://") {
		base = "ws://" + base
	}
	return fmt.Sprintf("%s/pico/ws?session_id=%s", strings.TrimRight(base, "/"), url.QueryEscape(sessionID))
}

// Envelope converts a bus message into a message.send envelope.
func Envelope(msg bus.Message, sessionID string) protocol.Message {
	env := protocol.NewMessage(protocol.TypeMessageSend, map[string]any{
		protocol.PayloadContent:     msg.Content,
		protocol.PayloadCustomType:  msg.CustomType,
		protocol.PayloadDisplay:     msg.Display,
		protocol.PayloadTriggerTurn: msg.TriggerTurn,
	})
	env.ID = msg.ID
	env.SessionID = sessionID
	if !msg.CreatedAt.IsZero() {
		env.Timestamp = msg.CreatedAt.UnixMilli()
	}
	return env
}

// Send dials addr, writes msg as a message.send envelope, and closes the connection.
func (c *Client) Send(ctx context.Context, addr, sessionID string, msg bus.Message) error {
	wsURL := BuildWSURL(addr, sessionID)

	header := http.Header{}
	if c.token != "" {
		header.Set("Authorization", "Bearer "+c.token)
	}

	dialer := websocket.Dialer{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}

	conn, resp, err := dialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
			return fmt.Errorf("pico WebSocket dial failed: %s (status: %d)", err.Error(), resp.StatusCode)
		}
		return fmt.Errorf("pico WebSocket dial failed: %w", err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	conn.SetWriteDeadline(time.Now().Add(DefaultWriteTimeout))
	if err := conn.WriteJSON(Envelope(msg, sessionID)); err != nil {
		return fmt.Errorf("failed to send pico message: %w", err)
	}

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return nil
}

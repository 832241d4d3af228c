package pico

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/mrexodia/devdocs-cli/pkg/bus"
	"github.com/mrexodia/devdocs-cli/pkg/logger"
)

// Sender is the subset of Client the forwarder needs.
type Sender interface {
	Send(ctx context.Context, addr, sessionID string, msg bus.Message) error
}

type Forwarder struct {
	bus       *bus.MessageBus
	client    Sender
	addr      string
	sessionID string
	limiter   *rate.Limiter
}

// NewForwarder drains mb into the host at addr. sendsPerSecond <= 0 disables pacing.
func NewForwarder(mb *bus.MessageBus, client Sender, addr, sessionID string, sendsPerSecond float64) *Forwarder {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if sendsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(sendsPerSecond), 1)
	}
	return &Forwarder{
		bus:       mb,
		client:    client,
		addr:      addr,
		sessionID: sessionID,
		limiter:   limiter,
	}
}

// Run forwards messages until ctx is cancelled or the bus is closed and drained.
// Individual send failures are logged and skipped.
func (f *Forwarder) Run(ctx context.Context) error {
	for {
		msg, ok := f.bus.Consume(ctx)
		if !ok {
			return ctx.Err()
		}

		if err := f.limiter.Wait(ctx); err != nil {
			return err
		}

		if err := f.client.Send(ctx, f.addr, f.sessionID, msg); err != nil {
			logger.ErrorCF("pico", "Failed to forward message", map[string]any{
				"id":    msg.ID,
				"addr":  f.addr,
				"error": err.Error(),
			})
			continue
		}

		logger.InfoCF("pico", "Message forwarded", map[string]any{
			"id":          msg.ID,
			"custom_type": msg.CustomType,
			"session_id":  f.sessionID,
		})
	}
}

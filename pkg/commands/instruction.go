package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrexodia/devdocs-cli/pkg/bus"
	"github.com/mrexodia/devdocs-cli/pkg/logger"
	"github.com/mrexodia/devdocs-cli/pkg/templates"
)

// DefaultCustomType tags instruction messages in the host conversation.
const DefaultCustomType = "devdocs"

// Sender is the host's message intake.
type Sender interface {
	SendMessage(ctx context.Context, msg bus.Message, opts bus.SendOptions) error
}

type SenderFunc func(ctx context.Context, msg bus.Message, opts bus.SendOptions) error

func (f SenderFunc) SendMessage(ctx context.Context, msg bus.Message, opts bus.SendOptions) error {
	return f(ctx, msg, opts)
}

type phase string

const (
	phaseValidating  phase = "validating"
	phaseHalted      phase = "halted"
	phaseRendering   phase = "rendering"
	phaseDispatching phase = "dispatching"
	phaseDone        phase = "done"
)

func trace(command string, p phase) {
	logger.DebugCF("commands", "Invocation "+string(p), map[string]any{"command": command})
}

// InstructionDefinition builds the definition for a catalog entry. Its handler
// validates the argument, renders the template, and sends the instruction with a
// turn trigger. A blank required argument only produces a warning notification.
func InstructionDefinition(entry templates.Entry, sender Sender, customType string) (Definition, error) {
	if sender == nil {
		return Definition{}, fmt.Errorf("%w: /%s", ErrNilSender, entry.Name)
	}
	if entry.Render == nil {
		return Definition{}, fmt.Errorf("%w: /%s", ErrNoRenderer, entry.Name)
	}
	if customType == "" {
		customType = DefaultCustomType
	}

	def := Definition{
		Name:        entry.Name,
		Description: entry.Description,
		Usage:       "/" + entry.Name,
		Args:        ArgIgnored,
	}
	if entry.TakesArgument() {
		def.Usage += " " + entry.Placeholder
		def.Args = ArgRequired
	}

	render := entry.Render
	def.Handler = func(ctx context.Context, req Request) error {
		trace(def.Name, phaseValidating)
		if _, err := Validate(def, req.Args); err != nil {
			var missing *MissingArgumentError
			if errors.As(err, &missing) {
				notify(req.UI, missing.Usage, LevelWarning)
				trace(def.Name, phaseHalted)
				return nil
			}
			return err
		}

		trace(def.Name, phaseRendering)
		content := render(req.Args)

		trace(def.Name, phaseDispatching)
		err := sender.SendMessage(ctx, bus.Message{
			CustomType: customType,
			Content:    content,
			Display:    true,
		}, bus.SendOptions{TriggerTurn: true})
		if err != nil {
			return fmt.Errorf("send /%s instruction: %w", def.Name, err)
		}

		trace(def.Name, phaseDone)
		return nil
	}
	return def, nil
}

// Definitions builds one instruction definition per catalog entry, sorted by name.
func Definitions(cat *templates.Catalog, sender Sender, customType string) ([]Definition, error) {
	entries := cat.Entries()
	defs := make([]Definition, 0, len(entries))
	for _, e := range entries {
		def, err := InstructionDefinition(e, sender, customType)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func notify(ui Notifier, message string, level Level) {
	if ui == nil {
		logger.WarnCF("commands", "No notifier for user message", map[string]any{
			"message": message,
			"level":   string(level),
		})
		return
	}
	ui.Notify(message, level)
}

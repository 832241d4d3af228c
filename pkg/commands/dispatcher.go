package commands

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/mrexodia/devdocs-cli/pkg/logger"
)

type Handler func(ctx context.Context, req Request) error

// Request is one invocation of a command.
type Request struct {
	Command string
	// Args is the raw argument text. Handlers must not assume it is trimmed.
	Args string
	// Text is the original input line when the request came from Dispatch.
	Text string
	// UI receives user notifications. May be nil.
	UI Notifier
}

type Result struct {
	Matched bool
	Handled bool
	Command string
	Err     error
}

// Dispatcher resolves command input against a registry and runs the matching handler.
type Dispatcher struct {
	reg *Registry
}

func NewDispatcher(reg *Registry) *Dispatcher {
	return &Dispatcher{reg: reg}
}

// Dispatch parses "/name args" and invokes the command. Text that is not a slash
// command, or names no registered command, is left unmatched with no side effects.
func (d *Dispatcher) Dispatch(ctx context.Context, text string, ui Notifier) Result {
	name, args, ok := parseCommand(text)
	if !ok {
		return Result{Matched: false}
	}
	return d.invoke(ctx, name, args, text, ui)
}

// Invoke runs the command registered under name with the raw argument.
func (d *Dispatcher) Invoke(ctx context.Context, name, args string, ui Notifier) Result {
	return d.invoke(ctx, name, args, "", ui)
}

func (d *Dispatcher) invoke(ctx context.Context, name, args, text string, ui Notifier) Result {
	if d == nil || d.reg == nil {
		return Result{Matched: false, Command: name}
	}

	def, err := d.reg.Lookup(name)
	if errors.Is(err, ErrNotFound) {
		return Result{Matched: false, Command: name}
	}
	if def.Handler == nil {
		// Definition-only command (help listing); the host handles it.
		return Result{Matched: false, Handled: false, Command: def.Name}
	}

	err = def.Handler(ctx, Request{
		Command: def.Name,
		Args:    args,
		Text:    text,
		UI:      ui,
	})
	if err != nil {
		logger.ErrorCF("commands", "Command failed", map[string]any{
			"command": def.Name,
			"error":   err.Error(),
		})
	}
	return Result{Matched: true, Handled: true, Command: def.Name, Err: err}
}

// parseCommand splits "/name@bot rest" into ("name", "rest"). Whitespace between the
// name and the argument is dropped; the argument itself is returned untouched.
func parseCommand(input string) (string, string, bool) {
	input = strings.TrimLeftFunc(input, unicode.IsSpace)
	if !strings.HasPrefix(input, "/") {
		return "", "", false
	}

	token, rest := input, ""
	if i := strings.IndexFunc(input, unicode.IsSpace); i >= 0 {
		token, rest = input[:i], strings.TrimLeftFunc(input[i:], unicode.IsSpace)
	}

	name := strings.TrimPrefix(token, "/")
	if i := strings.Index(name, "@"); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return "", "", false
	}
	return name, rest, true
}

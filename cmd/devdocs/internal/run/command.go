package run

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrexodia/devdocs-cli/cmd/devdocs/internal"
	"github.com/mrexodia/devdocs-cli/pkg/bus"
	"github.com/mrexodia/devdocs-cli/pkg/pico"
)

func NewRunCommand() *cobra.Command {
	var (
		host      string
		sessionID string
	)

	cmd := &cobra.Command{
		Use:   "run <command> [argument...]",
		Short: "Invoke one slash command and emit the resulting instruction",
		Long: `Invoke one slash command. The dispatched message is printed as JSON, or
forwarded to a Pico-protocol agent host when --host (or host.address) is set.`,
		Example: `  devdocs run epic-create payments-v2 refactor
  devdocs run /devdocs-status --host localhost:18790`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := internal.LoadConfig(cmd)
			if err != nil {
				return err
			}
			if host != "" {
				cfg.Host.Address = host
			}
			if sessionID != "" {
				cfg.Host.SessionID = sessionID
			}

			rt, err := internal.NewRuntime(cfg)
			if err != nil {
				return err
			}

			name := strings.TrimPrefix(args[0], "/")
			argument := strings.Join(args[1:], " ")
			out := cmd.OutOrStdout()

			res := rt.Dispatcher.Invoke(cmd.Context(), name, argument, internal.Console{Out: cmd.ErrOrStderr()})
			rt.Bus.Close()
			if !res.Matched {
				return fmt.Errorf("unknown command /%s (see `devdocs commands`)", name)
			}
			if res.Err != nil {
				return res.Err
			}

			if cfg.Host.Address != "" {
				client := pico.NewClient(cfg.Host.Token)
				return deliver(cmd.Context(), rt.Bus, client, cfg.Host.Address, cfg.Host.SessionID)
			}
			return printMessages(cmd.Context(), rt.Bus, out)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Pico host address (host:port or ws:// URL)")
	cmd.Flags().StringVar(&sessionID, "session", "", "Pico session ID")

	return cmd
}

// deliver sends every queued message to the host and fails on the first message
// the host did not accept.
func deliver(ctx context.Context, mb *bus.MessageBus, client pico.Sender, addr, sessionID string) error {
	for {
		msg, ok := mb.Consume(ctx)
		if !ok {
			return ctx.Err()
		}
		if err := client.Send(ctx, addr, sessionID, msg); err != nil {
			return fmt.Errorf("deliver message %s to %s: %w", msg.ID, addr, err)
		}
	}
}

// printMessages writes every queued message as indented JSON until the bus drains.
func printMessages(ctx context.Context, mb *bus.MessageBus, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	for {
		msg, ok := mb.Consume(ctx)
		if !ok {
			return ctx.Err()
		}
		if err := enc.Encode(msg); err != nil {
			return err
		}
	}
}

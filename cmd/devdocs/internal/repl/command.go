package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/mrexodia/devdocs-cli/cmd/devdocs/internal"
	"github.com/mrexodia/devdocs-cli/pkg/bus"
	"github.com/mrexodia/devdocs-cli/pkg/commands"
	"github.com/mrexodia/devdocs-cli/pkg/logger"
	"github.com/mrexodia/devdocs-cli/pkg/pico"
)

const prompt = "devdocs> "

func NewReplCommand() *cobra.Command {
	var host string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Type slash commands interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := internal.LoadConfig(cmd)
			if err != nil {
				return err
			}
			if host != "" {
				cfg.Host.Address = host
			}

			rt, err := internal.NewRuntime(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			out := &syncWriter{w: cmd.OutOrStdout()}
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				if cfg.Host.Address != "" {
					f := pico.NewForwarder(rt.Bus, pico.NewClient(cfg.Host.Token), cfg.Host.Address, cfg.Host.SessionID, cfg.Host.SendsPerSecond)
					if err := f.Run(ctx); err != nil && ctx.Err() == nil {
						logger.ErrorCF("repl", "Forwarder stopped", map[string]any{"error": err.Error()})
					}
					return
				}
				echoMessages(ctx, rt.Bus, out)
			}()

			s := &session{
				dispatcher: rt.Dispatcher,
				registry:   rt.Registry,
				out:        out,
			}
			fmt.Fprintf(out, "devdocs interactive mode, templates %s (Ctrl+C to exit)\n", rt.Catalog.Version())
			fmt.Fprintln(out, "  /help - list commands")
			fmt.Fprintln(out)

			interactiveMode(ctx, s, cmd.InOrStdin())

			rt.Bus.Close()
			wg.Wait()
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Pico host address (host:port or ws:// URL)")

	return cmd
}

type session struct {
	dispatcher *commands.Dispatcher
	registry   *commands.Registry
	out        io.Writer
}

// handle processes one input line and reports whether the loop should stop.
func (s *session) handle(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	switch input {
	case "":
		return false
	case "exit", "quit":
		fmt.Fprintln(s.out, "Goodbye!")
		return true
	case "/help":
		fmt.Fprintln(s.out, commands.FormatHelpMessage(s.registry.List()))
		return false
	}

	res := s.dispatcher.Dispatch(ctx, line, internal.Console{Out: s.out})
	switch {
	case res.Err != nil:
		fmt.Fprintf(s.out, "Error: %v\n", res.Err)
	case !res.Matched && strings.HasPrefix(input, "/"):
		fmt.Fprintf(s.out, "Unknown command: %s (type /help)\n", strings.Fields(input)[0])
	case !res.Matched:
		fmt.Fprintln(s.out, "Commands start with /. Type /help to list them.")
	}
	return false
}

func interactiveMode(ctx context.Context, s *session, stdin io.Reader) {
	rlCfg := &readline.Config{
		Prompt:          prompt,
		HistoryFile:     filepath.Join(os.TempDir(), ".devdocs_history"),
		HistoryLimit:    100,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          s.out,
	}
	if stdin != os.Stdin {
		rlCfg.Stdin = io.NopCloser(stdin)
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		fmt.Fprintf(s.out, "Error initializing readline: %v\n", err)
		fmt.Fprintln(s.out, "Falling back to simple input mode...")
		simpleInteractiveMode(ctx, s, stdin)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				fmt.Fprintln(s.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(s.out, "Error reading input: %v\n", err)
			continue
		}
		if s.handle(ctx, line) {
			return
		}
	}
}

func simpleInteractiveMode(ctx context.Context, s *session, stdin io.Reader) {
	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out, "\nGoodbye!")
			return
		}
		if s.handle(ctx, scanner.Text()) {
			return
		}
	}
}

// syncWriter serializes writes from the input loop and the message echo goroutine.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// echoMessages prints dispatched instructions when no agent host is configured.
func echoMessages(ctx context.Context, mb *bus.MessageBus, w io.Writer) {
	for {
		msg, ok := mb.Consume(ctx)
		if !ok {
			return
		}
		fmt.Fprintf(w, "\n[%s → agent, turn triggered]\n%s\n\n", msg.CustomType, msg.Content)
	}
}

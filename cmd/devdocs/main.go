// devdocs - slash commands for the devdocs workflow
// License: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrexodia/devdocs-cli/cmd/devdocs/internal"
	"github.com/mrexodia/devdocs-cli/cmd/devdocs/internal/commandscmd"
	"github.com/mrexodia/devdocs-cli/cmd/devdocs/internal/hook"
	"github.com/mrexodia/devdocs-cli/cmd/devdocs/internal/initcmd"
	"github.com/mrexodia/devdocs-cli/cmd/devdocs/internal/repl"
	"github.com/mrexodia/devdocs-cli/cmd/devdocs/internal/run"
	"github.com/mrexodia/devdocs-cli/cmd/devdocs/internal/version"
)

func NewDevdocsCommand() *cobra.Command {
	short := "Slash commands that turn devdocs workflows into agent instructions"

	cmd := &cobra.Command{
		Use:     "devdocs",
		Short:   short,
		Long:    short + "\n\nEach command renders an instruction template and hands it to the agent host.",
		Version: internal.FormatVersion(),
		Example: `  devdocs init
  devdocs run epic-create payments-v2 refactor
  devdocs repl`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String(internal.FlagConfig, "", "config file (default ~/.devdocs/config.json)")
	cmd.PersistentFlags().Bool(internal.FlagDebug, false, "enable debug logging")
	cmd.PersistentFlags().String(internal.FlagTemplates, "", "instruction template set (v1, v2)")

	cmd.AddCommand(
		initcmd.NewInitCommand(),
		commandscmd.NewCommandsCommand(),
		run.NewRunCommand(),
		repl.NewReplCommand(),
		hook.NewHookCommand(),
		version.NewVersionCommand(),
	)

	return cmd
}

func main() {
	if err := NewDevdocsCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

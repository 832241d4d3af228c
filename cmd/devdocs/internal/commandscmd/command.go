package commandscmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrexodia/devdocs-cli/cmd/devdocs/internal"
	"github.com/mrexodia/devdocs-cli/pkg/commands"
)

func NewCommandsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "commands",
		Aliases: []string{"ls"},
		Short:   "List the slash commands of the configured template set",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := internal.LoadConfig(cmd)
			if err != nil {
				return err
			}
			rt, err := internal.NewRuntime(cfg)
			if err != nil {
				return err
			}
			defer rt.Bus.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Instruction templates %s\n\n", rt.Catalog.Version())
			fmt.Fprintln(out, commands.FormatHelpMessage(rt.Registry.List()))
			return nil
		},
	}
}

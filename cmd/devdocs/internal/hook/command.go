package hook

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrexodia/devdocs-cli/cmd/devdocs/internal"
	"github.com/mrexodia/devdocs-cli/pkg/scaffold"
	"github.com/mrexodia/devdocs-cli/pkg/templates"
)

func NewHookCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hook",
		Short: "Print the pi hook that registers the slash commands",
		Long: `Print devdocs-commands.ts for the configured template set. The hook
registers every command with pi so the agent host can run them natively.`,
		Example: `  devdocs hook > .pi/hooks/devdocs-commands.ts
  devdocs hook --templates v1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := internal.LoadConfig(cmd)
			if err != nil {
				return err
			}
			cat, err := templates.ForVersion(cfg.Commands.TemplateVersion)
			if err != nil {
				return err
			}

			src, err := scaffold.GenerateHook(cat, cfg.Commands.CustomType)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), src)
			return err
		},
	}
}

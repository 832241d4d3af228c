package initcmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrexodia/devdocs-cli/cmd/devdocs/internal"
	"github.com/mrexodia/devdocs-cli/pkg/config"
	"github.com/mrexodia/devdocs-cli/pkg/scaffold"
	"github.com/mrexodia/devdocs-cli/pkg/templates"
)

func NewInitCommand() *cobra.Command {
	var (
		dir       string
		skipBeads bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize devdocs + beads methodology in a repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := internal.LoadConfig(cmd)
			if err != nil {
				return err
			}
			cat, err := templates.ForVersion(cfg.Commands.TemplateVersion)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			in := &scaffold.Installer{
				Dir:        dir,
				Runner:     scaffold.ExecRunner{Stdout: out, Stderr: os.Stderr},
				Reporter:   internal.Console{Out: out},
				Catalog:    cat,
				CustomType: cfg.Commands.CustomType,
				SkipBeads:  skipBeads,
			}
			if err := in.Run(cmd.Context()); err != nil {
				return err
			}
			if err := writeConfig(internal.GetConfigPath(cmd), cfg.Commands.TemplateVersion, in.Reporter); err != nil {
				return err
			}

			printSummary(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Repository directory to initialize")
	cmd.Flags().BoolVar(&skipBeads, "skip-beads", false, "Do not run bd init")

	return cmd
}

// writeConfig saves a default config at path unless one already exists.
func writeConfig(path, templateVersion string, rep scaffold.Reporter) error {
	if _, err := os.Stat(path); err == nil {
		rep.Info("Config already exists at " + path)
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config: %w", err)
	}

	cfg := config.DefaultConfig()
	cfg.Commands.TemplateVersion = templateVersion
	if err := config.SaveConfig(path, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	rep.Info("Created config " + path)
	return nil
}

func printSummary(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Done! Your repository now has:")
	fmt.Fprintln(w, "  • Beads issue tracking (bd)")
	fmt.Fprintln(w, "  • devdocs/ for epics and reference docs")
	fmt.Fprintln(w, "  • AGENTS.md with methodology")
	fmt.Fprintln(w, "  • pi hooks for bd prime + slash commands")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Slash commands: /epic-create, /devdocs-archive, /devdocs-status, etc.")
	fmt.Fprintln(w, "Run `devdocs commands` or /help in pi to see all commands.")
}
